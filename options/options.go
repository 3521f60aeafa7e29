// Package options provides a typed, validated option store used by
// dialers, listeners and connections for transport-neutral tunables.
package options

import (
	"sync"
	"time"

	"github.com/spsock/spsock/errs"
)

type (
	// Options is an option store.
	Options interface {
		SetOption(opt Option, val interface{}) (err error)
		WithOption(opt Option, val interface{}) Options
		GetOption(opt Option) (val interface{}, ok bool)
		GetOptionDefault(opt Option, def interface{}) (val interface{})
		OptionValues() []*OptionValue
	}

	// Option is one option item.
	Option interface {
		Name() interface{}
		Validate(val interface{}) error
	}

	// OptionValue is an option value pair.
	OptionValue struct {
		Option Option
		Value  interface{}
	}

	options struct {
		sync.RWMutex
		opts    map[Option]interface{}
		accepts map[Option]bool
	}

	baseOption struct {
		name interface{}
	}

	// BoolOption is an option with bool value.
	BoolOption interface {
		Option
		Value(val interface{}) bool
	}

	boolOption struct {
		baseOption
	}

	// IntOption is an option with int value.
	IntOption interface {
		Option
		Value(val interface{}) int
	}

	intOption struct {
		baseOption
	}

	// Uint32Option is an option with uint32 value.
	Uint32Option interface {
		Option
		Value(val interface{}) uint32
	}

	uint32Option struct {
		baseOption
	}

	// TimeDurationOption is an option with time duration value.
	TimeDurationOption interface {
		Option
		Value(val interface{}) time.Duration
	}

	timeDurationOption struct {
		baseOption
	}

	// StringOption is an option with string value.
	StringOption interface {
		Option
		Value(val interface{}) string
	}

	stringOption struct {
		baseOption
	}
)

// NewOptions create an option store accepting any option.
func NewOptions() Options {
	return &options{
		opts: make(map[Option]interface{}),
	}
}

// NewOptionsWithAccepts create an option store accepting only the given options.
func NewOptionsWithAccepts(accepts ...Option) Options {
	opts := &options{
		opts:    make(map[Option]interface{}),
		accepts: make(map[Option]bool),
	}
	for _, opt := range accepts {
		opts.accepts[opt] = true
	}
	return opts
}

func (opts *options) acceptOption(opt Option) bool {
	return opts.accepts == nil || opts.accepts[opt]
}

// SetOption validate and store an option value.
func (opts *options) SetOption(opt Option, val interface{}) (err error) {
	if err = opt.Validate(val); err != nil {
		return
	}

	if !opts.acceptOption(opt) {
		return errs.ErrUnsupportedOption
	}

	opts.Lock()
	opts.opts[opt] = val
	opts.Unlock()
	return
}

// WithOption set an option value, for chained configuration.
func (opts *options) WithOption(opt Option, val interface{}) Options {
	opts.SetOption(opt, val)
	return opts
}

// GetOption get an option value.
func (opts *options) GetOption(opt Option) (val interface{}, ok bool) {
	opts.RLock()
	val, ok = opts.opts[opt]
	opts.RUnlock()
	return
}

// GetOptionDefault get an option value with default.
func (opts *options) GetOptionDefault(opt Option, def interface{}) (val interface{}) {
	var ok bool
	if val, ok = opts.GetOption(opt); !ok {
		val = def
	}
	return
}

func (opts *options) OptionValues() (res []*OptionValue) {
	opts.RLock()
	defer opts.RUnlock()

	res = make([]*OptionValue, 0, len(opts.opts))
	for opt, val := range opts.opts {
		res = append(res, &OptionValue{opt, val})
	}
	return
}

func (o *baseOption) Name() interface{} {
	return o.name
}

// NewBoolOption create a bool option
func NewBoolOption(name interface{}) BoolOption {
	return &boolOption{baseOption{name}}
}

// Validate validate the option value
func (o *boolOption) Validate(val interface{}) error {
	if _, ok := val.(bool); !ok {
		return errs.ErrInvalidOptionValue
	}
	return nil
}

// Value get option's value, must ensure option value is not empty
func (o *boolOption) Value(val interface{}) bool {
	return val.(bool)
}

// NewIntOption create an int option
func NewIntOption(name interface{}) IntOption {
	return &intOption{baseOption{name}}
}

// Validate validate the option value
func (o *intOption) Validate(val interface{}) error {
	if _, ok := val.(int); !ok {
		return errs.ErrInvalidOptionValue
	}
	return nil
}

// Value get option's value, must ensure option value is not empty
func (o *intOption) Value(val interface{}) int {
	return val.(int)
}

// NewUint32Option create an uint32 option
func NewUint32Option(name interface{}) Uint32Option {
	return &uint32Option{baseOption{name}}
}

// Validate validate the option value
func (o *uint32Option) Validate(val interface{}) error {
	if _, ok := val.(uint32); !ok {
		return errs.ErrInvalidOptionValue
	}
	return nil
}

// Value get option's value, must ensure option value is not empty
func (o *uint32Option) Value(val interface{}) uint32 {
	return val.(uint32)
}

// NewTimeDurationOption create a time duration option
func NewTimeDurationOption(name interface{}) TimeDurationOption {
	return &timeDurationOption{baseOption{name}}
}

// Validate validate the option value
func (o *timeDurationOption) Validate(val interface{}) error {
	if _, ok := val.(time.Duration); !ok {
		return errs.ErrInvalidOptionValue
	}
	return nil
}

// Value get option's value, must ensure option value is not empty
func (o *timeDurationOption) Value(val interface{}) time.Duration {
	return val.(time.Duration)
}

// NewStringOption create a string option
func NewStringOption(name interface{}) StringOption {
	return &stringOption{baseOption{name}}
}

// Validate validate the option value
func (o *stringOption) Validate(val interface{}) error {
	if _, ok := val.(string); !ok {
		return errs.ErrInvalidOptionValue
	}
	return nil
}

// Value get option's value, must ensure option value is not empty
func (o *stringOption) Value(val interface{}) string {
	return val.(string)
}
