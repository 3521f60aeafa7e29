package transport

import (
	"testing"

	"github.com/spsock/spsock/errs"
)

// testTran is an optionless transport used by the tests.
type testTran struct{}

func (testTran) Scheme() string          { return "test" }
func (testTran) Level() int              { return -100 }
func (testTran) NewOptionSet() OptionSet { return nil }

func (testTran) NewDialer(address string) (Dialer, error) {
	return nil, errs.ErrOperationNotSupported
}

func (testTran) NewListener(address string) (Listener, error) {
	return nil, errs.ErrOperationNotSupported
}

func TestOptionValueCodec(t *testing.T) {
	for _, v := range []int{0, 1, -1, 30, 128 * 1024, -128 * 1024} {
		b := EncodeOptionValue(v)
		if len(b) != OptionSize {
			t.Fatalf("encoded size: %d", len(b))
		}
		if got := DecodeOptionValue(b); got != v {
			t.Errorf("decode: %d, want %d", got, v)
		}
	}
}

func TestSockOptionSetDefaults(t *testing.T) {
	set := newSockOptionSet()
	defer set.Destroy()

	value := make([]byte, OptionSize)
	for _, o := range []struct{ option, want int }{
		{OptionSndBuf, 128 * 1024},
		{OptionRcvBuf, 128 * 1024},
		{OptionKeepAlive, 1},
	} {
		sz, err := set.GetOption(o.option, value)
		if err != nil {
			t.Fatalf("get option %d error: %s", o.option, err)
		}
		if sz != OptionSize {
			t.Fatalf("get option %d size: %d", o.option, sz)
		}
		if got := DecodeOptionValue(value); got != o.want {
			t.Errorf("default option %d: %d, want %d", o.option, got, o.want)
		}
	}
}

func TestSockOptionSetValidate(t *testing.T) {
	set := newSockOptionSet()
	defer set.Destroy()

	for _, option := range []int{OptionSndBuf, OptionRcvBuf} {
		for _, v := range []int{-1, 0} {
			if err := set.SetOption(option, EncodeOptionValue(v)); err != errs.ErrInvalidOptionValue {
				t.Errorf("set option %d=%d error: %v", option, v, err)
			}
		}
		if err := set.SetOption(option, EncodeOptionValue(64*1024)); err != nil {
			t.Errorf("set option %d error: %s", option, err)
		}
	}

	if err := set.SetOption(OptionKeepAlive, EncodeOptionValue(2)); err != errs.ErrInvalidOptionValue {
		t.Errorf("set keepalive=2 error: %v", err)
	}
	if err := set.SetOption(OptionKeepAlive, EncodeOptionValue(0)); err != nil {
		t.Errorf("set keepalive=0 error: %s", err)
	}

	if err := set.SetOption(OptionSndBuf, []byte{1, 2}); err != errs.ErrInvalidOptionValue {
		t.Errorf("set sndbuf with 2 bytes error: %v", err)
	}
	if err := set.SetOption(100, EncodeOptionValue(1)); err != errs.ErrUnsupportedOption {
		t.Errorf("set unknown option error: %v", err)
	}
}

func TestEndpointOptionsRouting(t *testing.T) {
	ep := NewEndpointOptions(testTran{})
	defer ep.Destroy()

	// generic socket level present
	if err := SetOptInt(ep, LevelSocket, OptionSndBuf, 64*1024); err != nil {
		t.Fatalf("set sndbuf error: %s", err)
	}
	if v, err := GetOptInt(ep, LevelSocket, OptionSndBuf); err != nil || v != 64*1024 {
		t.Errorf("get sndbuf: %d, %v", v, err)
	}

	// the transport has no option set, its level is unknown
	if err := SetOptInt(ep, testTran{}.Level(), 1, 1); err != errs.ErrUnsupportedOption {
		t.Errorf("set on optionless level error: %v", err)
	}
	if _, err := GetOptInt(ep, testTran{}.Level(), 1); err != errs.ErrUnsupportedOption {
		t.Errorf("get on optionless level error: %v", err)
	}
}
