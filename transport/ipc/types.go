package ipc

import (
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/transport"
)

type (
	ipcTran string

	// optionSet is the IPC option set variant. The transport has no
	// tunables of its own; every code is unsupported.
	optionSet struct{}
)

const (
	// Transport is a transport.Transport for IPC.
	Transport = ipcTran("ipc")

	// Level is the IPC transport's option namespace.
	Level = -2
)

func init() {
	transport.RegisterTransport(Transport)
}

// Scheme implements the Transport Scheme method.
func (t ipcTran) Scheme() string {
	return string(t)
}

// Level implements the Transport Level method.
func (t ipcTran) Level() int {
	return Level
}

// NewOptionSet implements the Transport NewOptionSet method.
func (t ipcTran) NewOptionSet() transport.OptionSet {
	return optionSet{}
}

func (optionSet) Destroy() {}

func (optionSet) SetOption(option int, value []byte) error {
	if len(value) != transport.OptionSize {
		return errs.ErrInvalidOptionValue
	}
	return errs.ErrUnsupportedOption
}

func (optionSet) GetOption(option int, value []byte) (int, error) {
	return 0, errs.ErrUnsupportedOption
}
