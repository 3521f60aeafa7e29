package ipc

import (
	"testing"

	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/transport"
)

func TestOptionSet(t *testing.T) {
	set := Transport.NewOptionSet()
	defer set.Destroy()

	// size is checked before the code is looked at
	if err := set.SetOption(1, []byte{1}); err != errs.ErrInvalidOptionValue {
		t.Errorf("set with short value error: %v", err)
	}

	// the transport has no tunables
	for option := 0; option < 4; option++ {
		if err := set.SetOption(option, transport.EncodeOptionValue(1)); err != errs.ErrUnsupportedOption {
			t.Errorf("set option %d error: %v", option, err)
		}
		value := make([]byte, transport.OptionSize)
		if _, err := set.GetOption(option, value); err != errs.ErrUnsupportedOption {
			t.Errorf("get option %d error: %v", option, err)
		}
	}
}
