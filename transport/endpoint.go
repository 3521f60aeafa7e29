package transport

import (
	"github.com/spsock/spsock/errs"
)

type (
	// Endpoint exposes the accumulated socket option values of one bind
	// or connect context, addressed by (level, option).
	Endpoint interface {
		SetOpt(level, option int, value []byte) error
		GetOpt(level, option int, value []byte) (int, error)
	}

	// EndpointOptions routes raw option calls to the option set of the
	// addressed level: the generic socket level set plus the owning
	// transport's own set.
	EndpointOptions struct {
		levels map[int]OptionSet
	}
)

// NewEndpointOptions creates the option sets of one endpoint: the generic
// socket level set, and the transport's own set when it has one.
func NewEndpointOptions(t Transport) *EndpointOptions {
	ep := &EndpointOptions{
		levels: map[int]OptionSet{
			LevelSocket: newSockOptionSet(),
		},
	}
	if set := t.NewOptionSet(); set != nil {
		ep.levels[t.Level()] = set
	}
	return ep
}

// SetOpt implements the Endpoint SetOpt method.
func (ep *EndpointOptions) SetOpt(level, option int, value []byte) error {
	set, ok := ep.levels[level]
	if !ok {
		return errs.ErrUnsupportedOption
	}
	return set.SetOption(option, value)
}

// GetOpt implements the Endpoint GetOpt method.
func (ep *EndpointOptions) GetOpt(level, option int, value []byte) (int, error) {
	set, ok := ep.levels[level]
	if !ok {
		return 0, errs.ErrUnsupportedOption
	}
	return set.GetOption(option, value)
}

// Destroy releases every owned option set. It must be called exactly once,
// by the owning dialer or listener.
func (ep *EndpointOptions) Destroy() {
	for _, set := range ep.levels {
		set.Destroy()
	}
	ep.levels = nil
}

// SetOptInt sets an integer option value on ep.
func SetOptInt(ep Endpoint, level, option, val int) error {
	return ep.SetOpt(level, option, EncodeOptionValue(val))
}

// GetOptInt gets an integer option value from ep.
func GetOptInt(ep Endpoint, level, option int) (int, error) {
	value := make([]byte, OptionSize)
	if _, err := ep.GetOpt(level, option, value); err != nil {
		return 0, err
	}
	return DecodeOptionValue(value), nil
}
