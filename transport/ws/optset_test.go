package ws

import (
	"testing"

	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/transport"
)

func TestOptionSet(t *testing.T) {
	set := newOptionSet()
	defer set.Destroy()

	value := make([]byte, transport.OptionSize)
	if _, err := set.GetOption(OptionMsgType, value); err != nil {
		t.Fatalf("get msg type error: %s", err)
	}
	if v := transport.DecodeOptionValue(value); v != MsgTypeBinary {
		t.Errorf("default msg type: %d", v)
	}

	if err := set.SetOption(OptionMsgType, transport.EncodeOptionValue(MsgTypeText)); err != nil {
		t.Fatalf("set msg type error: %s", err)
	}
	if err := set.SetOption(OptionMsgType, transport.EncodeOptionValue(3)); err != errs.ErrInvalidOptionValue {
		t.Errorf("set msg type=3 error: %v", err)
	}
	if err := set.SetOption(OptionMsgType, []byte{1, 2}); err != errs.ErrInvalidOptionValue {
		t.Errorf("set with short value error: %v", err)
	}
	if err := set.SetOption(9, transport.EncodeOptionValue(1)); err != errs.ErrUnsupportedOption {
		t.Errorf("set unknown option error: %v", err)
	}

	if _, err := set.GetOption(OptionMsgType, value); err != nil {
		t.Fatalf("get msg type error: %s", err)
	}
	if v := transport.DecodeOptionValue(value); v != MsgTypeText {
		t.Errorf("msg type: %d", v)
	}
}
