//go:build !windows && !plan9 && !js
// +build !windows,!plan9,!js

// Package ipc implements the IPC transport on top of UNIX domain sockets.
package ipc

import (
	"net"
	"os"

	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

type (
	dialer struct {
		options.Options
		*transport.EndpointOptions

		addr *net.UnixAddr
	}

	listener struct {
		options.Options
		*transport.EndpointOptions

		addr     *net.UnixAddr
		listener *net.UnixListener
	}
)

func (d *dialer) Dial() (transport.Connection, error) {
	conn, err := net.DialUnix("unix", nil, d.addr)
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
	// remove exists socket file
	path := l.addr.String()
	if stat, err := os.Stat(path); err == nil {
		if stat.Mode()|os.ModeSocket != 0 {
			if err := os.Remove(path); err != nil {
				return errs.ErrAddrInUse
			}
		} else {
			return errs.ErrAddrInUse
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	listener, err := net.ListenUnix("unix", l.addr)
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

	conn, err := l.listener.AcceptUnix()
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
	var (
		err  error
		addr *net.UnixAddr
	)

	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	if addr, err = net.ResolveUnixAddr("unix", address); err != nil {
		return nil, err
	}

	d := &dialer{
		Options:         transport.NewConnOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		addr:            addr,
	}
	return d, nil
}

// NewListener implements the Transport NewListener method.
func (t ipcTran) NewListener(address string) (transport.Listener, error) {
	var (
		err  error
		addr *net.UnixAddr
	)

	if address, err = transport.StripScheme(t, address); err != nil {
		return nil, err
	}

	if addr, err = net.ResolveUnixAddr("unix", address); err != nil {
		return nil, err
	}

	l := &listener{
		Options:         transport.NewConnOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		addr:            addr,
	}

	return l, nil
}
