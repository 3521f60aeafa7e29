package ws

import (
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/transport"
)

// optionSet holds the WebSocket tuning values of one endpoint
// configuration context.
type optionSet struct {
	msgType int32
}

func newOptionSet() transport.OptionSet {
	return &optionSet{
		msgType: MsgTypeBinary,
	}
}

// Destroy implements the OptionSet Destroy method.
func (set *optionSet) Destroy() {}

// SetOption implements the OptionSet SetOption method.
func (set *optionSet) SetOption(option int, value []byte) error {
	if len(value) != transport.OptionSize {
		return errs.ErrInvalidOptionValue
	}
	val := int32(transport.DecodeOptionValue(value))

	switch option {
	case OptionMsgType:
		if val != MsgTypeText && val != MsgTypeBinary {
			return errs.ErrInvalidOptionValue
		}
		set.msgType = val
	default:
		return errs.ErrUnsupportedOption
	}
	return nil
}

// GetOption implements the OptionSet GetOption method.
func (set *optionSet) GetOption(option int, value []byte) (int, error) {
	var val int32
	switch option {
	case OptionMsgType:
		val = set.msgType
	default:
		return 0, errs.ErrUnsupportedOption
	}
	transport.PutOptionValue(value, int(val))
	return transport.OptionSize, nil
}
