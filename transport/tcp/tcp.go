// Package tcp implements the TCP transport . To enable it simply import it.
package tcp

import (
	"net"

	log "github.com/sirupsen/logrus"
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

const (
	// Transport is a transport.Transport for TCP.
	Transport = tcpTran(0)
)

func init() {
	transport.RegisterTransport(Transport)
}

// configTCP pushes the endpoint's accumulated option values onto a freshly
// created socket, before it is handed to the connection layer.
func configTCP(conn *net.TCPConn, ep transport.Endpoint) error {
	sock, err := newRawSocket(conn)
	if err != nil {
		return err
	}
	return applyOptions(ep, sock, platformCaps)
}

type dialer struct {
	options.Options
	*transport.EndpointOptions

	addr string
}

func (d *dialer) Dial() (_ transport.Connection, err error) {
	var (
		addr *net.TCPAddr
	)

	if addr, err = transport.ResolveTCPAddr(d.addr); err != nil {
		return nil, err
	}

	conn, err := net.DialTCP("tcp", nil, addr)
	if err != nil {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithError(err).WithFields(log.Fields{"addr": d.addr, "action": "failed"}).Debug("dial")
		}
		return nil, err
	}
	if err = configTCP(conn, d.EndpointOptions); err != nil {
		conn.Close()
		return nil, err
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{"addr": d.addr, "action": "success"}).Debug("dial")
	}

	return transport.NewConnection(Transport, conn, d.Options)
}

func (d *dialer) Close() error {
	d.EndpointOptions.Destroy()
	return nil
}

type listener struct {
	options.Options
	*transport.EndpointOptions

	addr     *net.TCPAddr
	bound    net.Addr
	listener *net.TCPListener
}

func (l *listener) Listen() (err error) {
	l.listener, err = net.ListenTCP("tcp", l.addr)
	if err == nil {
		l.bound = l.listener.Addr()
	}
	return
}

func (l *listener) Accept() (transport.Connection, error) {
	if l.listener == nil {
		return nil, errs.ErrBadOperateState
	}
	conn, err := l.listener.AcceptTCP()
	if err != nil {
		return nil, err
	}
	if err = configTCP(conn, l.EndpointOptions); err != nil {
		conn.Close()
		return nil, err
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{"addr": l.Address(), "remote": conn.RemoteAddr().String()}).Debug("accept")
	}
	return transport.NewConnection(Transport, conn, l.Options)
}

func (l *listener) Address() string {
	if b := l.bound; b != nil {
		return "tcp://" + b.String()
	}
	return "tcp://" + l.addr.String()
}

func (l *listener) Close() error {
	l.EndpointOptions.Destroy()
	if l.listener != nil {
		l.listener.Close()
	}
	return nil
}

type tcpTran int

func (t tcpTran) Scheme() string {
	return "tcp"
}

// Level implements the Transport Level method; it is the namespace of the
// TCP option codes.
func (t tcpTran) Level() int {
	return Level
}

// NewOptionSet implements the Transport NewOptionSet method. It creates
// the TCP option set for one endpoint configuration context.
func (t tcpTran) NewOptionSet() transport.OptionSet {
	return newOptionSet()
}

func (t tcpTran) NewDialer(addr string) (transport.Dialer, error) {
	var err error
	if addr, err = transport.StripScheme(t, addr); err != nil {
		return nil, err
	}

	// check to ensure the provided addr resolves correctly.
	if _, err = transport.ResolveTCPAddr(addr); err != nil {
		return nil, err
	}

	d := &dialer{
		Options:         transport.NewConnOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		addr:            addr,
	}

	return d, nil
}

func (t tcpTran) NewListener(addr string) (transport.Listener, error) {
	var err error
	l := &listener{
		Options:         transport.NewConnOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
	}

	if addr, err = transport.StripScheme(t, addr); err != nil {
		return nil, err
	}

	if l.addr, err = transport.ResolveTCPAddr(addr); err != nil {
		return nil, err
	}

	return l, nil
}
