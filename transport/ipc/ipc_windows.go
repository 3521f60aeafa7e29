//go:build windows
// +build windows

// Package ipc implements the IPC transport on top of Windows Named Pipes.
package ipc

import (
	"net"

	"github.com/Microsoft/go-winio"
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

type (
	dialer struct {
		options.Options
		*transport.EndpointOptions

		path string
	}

	listener struct {
		options.Options
		*transport.EndpointOptions

		path     string
		listener net.Listener
	}
)

func (d *dialer) Dial() (transport.Connection, error) {
	conn, err := winio.DialPipe("\\\\.\\pipe\\"+d.path, nil)
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn, d.Options)
}

func (d *dialer) Close() error {
	d.EndpointOptions.Destroy()
	return nil
}

func (l *listener) Listen() error {
	config := &winio.PipeConfig{
		InputBufferSize: int32(ListenerOptionInputBufferSize.Value(
			l.GetOptionDefault(ListenerOptionInputBufferSize, 4096))),
		OutputBufferSize: int32(ListenerOptionOutputBufferSize.Value(
			l.GetOptionDefault(ListenerOptionOutputBufferSize, 4096))),
		MessageMode: false,
	}
	if val, ok := l.GetOption(ListenerOptionSecurityDescriptor); ok {
		config.SecurityDescriptor = ListenerOptionSecurityDescriptor.Value(val)
	}

	listener, err := winio.ListenPipe("\\\\.\\pipe\\"+l.path, config)
	if err != nil {
		return err
	}
	l.listener = listener
	return nil
}

func (l *listener) Accept() (transport.Connection, error) {
	if l.listener == nil {
		return nil, errs.ErrBadOperateState
	}

	conn, err := l.listener.Accept()
	if err != nil {
		return nil, err
	}
	return transport.NewConnection(Transport, conn, l.Options)
}

// Close implements the Listener Close method.
func (l *listener) Close() error {
	l.EndpointOptions.Destroy()
	if l.listener == nil {
		return nil
	}
	return l.listener.Close()
}

func (t ipcTran) NewDialer(address string) (transport.Dialer, error) {
	var err error
	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	d := &dialer{
		Options:         transport.NewConnOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		path:            address,
	}

	return d, nil
}

// NewListener implements the Transport NewListener method.
func (t ipcTran) NewListener(address string) (transport.Listener, error) {
	var err error
	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	l := &listener{
		Options:         newListenerOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		path:            address,
	}

	return l, nil
}
