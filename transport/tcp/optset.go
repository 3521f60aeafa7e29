package tcp

import (
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/transport"
)

// useOSDefault marks a keepalive tunable the OS keeps control of.
const useOSDefault = -1

// optionSet holds the TCP tuning values of one endpoint configuration
// context.
type optionSet struct {
	noDelay   int32
	keepIdle  int32
	keepIntvl int32
	keepCnt   int32
}

func newOptionSet() transport.OptionSet {
	return &optionSet{
		noDelay:   0,
		keepIdle:  useOSDefault,
		keepIntvl: useOSDefault,
		keepCnt:   useOSDefault,
	}
}

// Destroy implements the OptionSet Destroy method. The set owns no nested
// resources.
func (set *optionSet) Destroy() {}

// SetOption implements the OptionSet SetOption method.
func (set *optionSet) SetOption(option int, value []byte) error {
	// every option carries exactly one native integer
	if len(value) != transport.OptionSize {
		return errs.ErrInvalidOptionValue
	}
	val := int32(transport.DecodeOptionValue(value))

	switch option {
	case OptionNoDelay:
		if val != 0 && val != 1 {
			return errs.ErrInvalidOptionValue
		}
		set.noDelay = val
	case OptionKeepIdle:
		// zero is rejected: only strictly positive overrides are stored
		if val <= 0 {
			return errs.ErrInvalidOptionValue
		}
		set.keepIdle = val
	case OptionKeepIntvl:
		if val <= 0 {
			return errs.ErrInvalidOptionValue
		}
		set.keepIntvl = val
	case OptionKeepCnt:
		if val <= 0 {
			return errs.ErrInvalidOptionValue
		}
		set.keepCnt = val
	default:
		return errs.ErrUnsupportedOption
	}
	return nil
}

// GetOption implements the OptionSet GetOption method. Only validated
// values are ever stored, so no range check happens here.
func (set *optionSet) GetOption(option int, value []byte) (int, error) {
	var val int32
	switch option {
	case OptionNoDelay:
		val = set.noDelay
	case OptionKeepIdle:
		val = set.keepIdle
	case OptionKeepIntvl:
		val = set.keepIntvl
	case OptionKeepCnt:
		val = set.keepCnt
	default:
		return 0, errs.ErrUnsupportedOption
	}
	transport.PutOptionValue(value, int(val))
	return transport.OptionSize, nil
}
