package options

import (
	"testing"
	"time"

	"github.com/spsock/spsock/errs"
)

type optionName int

const (
	optionNameFlag optionName = iota
	optionNameCount
	optionNameTimeout
)

var (
	optionFlag    = NewBoolOption(optionNameFlag)
	optionCount   = NewIntOption(optionNameCount)
	optionTimeout = NewTimeDurationOption(optionNameTimeout)
)

func TestSetGet(t *testing.T) {
	opts := NewOptions()

	if err := opts.SetOption(optionFlag, true); err != nil {
		t.Fatalf("SetOption error: %s", err)
	}
	val, ok := opts.GetOption(optionFlag)
	if !ok {
		t.Fatalf("option not found")
	}
	if !optionFlag.Value(val) {
		t.Errorf("option value: %v", val)
	}

	if _, ok = opts.GetOption(optionCount); ok {
		t.Errorf("unset option found")
	}
	if v := optionCount.Value(opts.GetOptionDefault(optionCount, 3)); v != 3 {
		t.Errorf("default value: %d", v)
	}
}

func TestValidate(t *testing.T) {
	opts := NewOptions()

	if err := opts.SetOption(optionFlag, 1); err != errs.ErrInvalidOptionValue {
		t.Errorf("bool option accepts int: %v", err)
	}
	if err := opts.SetOption(optionCount, "10"); err != errs.ErrInvalidOptionValue {
		t.Errorf("int option accepts string: %v", err)
	}
	if err := opts.SetOption(optionTimeout, time.Second); err != nil {
		t.Errorf("SetOption error: %s", err)
	}
}

func TestAccepts(t *testing.T) {
	opts := NewOptionsWithAccepts(optionFlag)

	if err := opts.SetOption(optionFlag, false); err != nil {
		t.Errorf("SetOption error: %s", err)
	}
	if err := opts.SetOption(optionCount, 1); err != errs.ErrUnsupportedOption {
		t.Errorf("unaccepted option stored: %v", err)
	}
}

func TestWithOptionValues(t *testing.T) {
	opts := NewOptions().
		WithOption(optionFlag, true).
		WithOption(optionCount, 2)

	values := opts.OptionValues()
	if len(values) != 2 {
		t.Fatalf("option values: %d", len(values))
	}
	for _, ov := range values {
		switch ov.Option {
		case optionFlag:
			if !optionFlag.Value(ov.Value) {
				t.Errorf("flag value: %v", ov.Value)
			}
		case optionCount:
			if optionCount.Value(ov.Value) != 2 {
				t.Errorf("count value: %v", ov.Value)
			}
		default:
			t.Errorf("unexpected option: %v", ov.Option)
		}
	}
}
