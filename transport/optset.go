package transport

import (
	"encoding/binary"

	"github.com/spsock/spsock/errs"
)

// OptionSize is the exact payload size of every raw option value: one
// native integer. No variable length option payloads exist at this layer.
const OptionSize = 4

type (
	// OptionSet is the raw socket tuning surface a transport provides for
	// one endpoint configuration context. Values are always exactly
	// OptionSize bytes in native byte order. The concrete variant is
	// bound at construction and never rebound afterwards.
	OptionSet interface {
		// Destroy releases all resources owned by the set. It must be
		// called exactly once.
		Destroy()
		// SetOption validates and stores one option value.
		SetOption(option int, value []byte) error
		// GetOption copies the stored value into value, truncating when
		// the buffer is shorter than OptionSize, and returns the true
		// value size.
		GetOption(option int, value []byte) (int, error)
	}

	// sockOptionSet holds the generic socket level options shared by all
	// stream transports.
	sockOptionSet struct {
		sndBuf    int32
		rcvBuf    int32
		keepAlive int32
	}
)

// LevelSocket is the namespace of the generic socket level options.
const LevelSocket = 0

// generic socket level option codes
const (
	OptionSndBuf = iota + 1
	OptionRcvBuf
	OptionKeepAlive
)

// EncodeOptionValue encodes v as one native integer.
func EncodeOptionValue(v int) []byte {
	b := make([]byte, OptionSize)
	binary.NativeEndian.PutUint32(b, uint32(int32(v)))
	return b
}

// DecodeOptionValue decodes one native integer. value must hold at least
// OptionSize bytes.
func DecodeOptionValue(value []byte) int {
	return int(int32(binary.NativeEndian.Uint32(value)))
}

// PutOptionValue copies v into value, truncating when the buffer is
// shorter than OptionSize.
func PutOptionValue(value []byte, v int) {
	var b [OptionSize]byte
	binary.NativeEndian.PutUint32(b[:], uint32(int32(v)))
	copy(value, b[:])
}

func newSockOptionSet() OptionSet {
	// default 128KiB buffers, keepalive enabled
	return &sockOptionSet{
		sndBuf:    128 * 1024,
		rcvBuf:    128 * 1024,
		keepAlive: 1,
	}
}

func (so *sockOptionSet) Destroy() {}

func (so *sockOptionSet) SetOption(option int, value []byte) error {
	// every option carries exactly one native integer
	if len(value) != OptionSize {
		return errs.ErrInvalidOptionValue
	}
	val := int32(DecodeOptionValue(value))

	switch option {
	case OptionSndBuf:
		if val <= 0 {
			return errs.ErrInvalidOptionValue
		}
		so.sndBuf = val
	case OptionRcvBuf:
		if val <= 0 {
			return errs.ErrInvalidOptionValue
		}
		so.rcvBuf = val
	case OptionKeepAlive:
		if val != 0 && val != 1 {
			return errs.ErrInvalidOptionValue
		}
		so.keepAlive = val
	default:
		return errs.ErrUnsupportedOption
	}
	return nil
}

func (so *sockOptionSet) GetOption(option int, value []byte) (int, error) {
	var val int32
	switch option {
	case OptionSndBuf:
		val = so.sndBuf
	case OptionRcvBuf:
		val = so.rcvBuf
	case OptionKeepAlive:
		val = so.keepAlive
	default:
		return 0, errs.ErrUnsupportedOption
	}
	PutOptionValue(value, int(val))
	return OptionSize, nil
}
