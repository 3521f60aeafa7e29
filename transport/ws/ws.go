// Package ws implements the WebSocket transport on top of
// gorilla/websocket. To enable it simply import it.
package ws

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spsock/spsock/errs"
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

type (
	wsTran string

	dialer struct {
		options.Options
		*transport.EndpointOptions

		addr string
		url  *url.URL
	}

	// Listener is the websocket listener, exported so callers can mount
	// its ServeMux on their own server.
	Listener struct {
		options.Options
		*transport.EndpointOptions

		addr     string
		URL      *url.URL
		upgrader websocket.Upgrader
		*http.ServeMux
		htsvr    *http.Server
		listener net.Listener
		pending  chan *wsConn
		sync.Mutex
		closedq chan struct{}
	}

	wsConn struct {
		*websocket.Conn
		laddr net.Addr
		raddr net.Addr
		r     io.Reader
		dtype int
	}

	address string
)

const (
	// Transport is a transport.Transport for WebSocket.
	Transport = wsTran("ws")
)

func init() {
	transport.RegisterTransport(Transport)
}

// address
func (a address) Network() string {
	return string(Transport)
}

func (a address) String() string {
	return string(a)
}

// ws
func (c *wsConn) LocalAddr() net.Addr {
	return c.laddr
}

func (c *wsConn) RemoteAddr() net.Addr {
	return c.raddr
}

func (c *wsConn) Read(b []byte) (n int, err error) {
	if c.r == nil {
		if _, c.r, err = c.Conn.NextReader(); err != nil {
			return
		}
	}
	n, err = c.r.Read(b)
	if err == io.EOF {
		c.r = nil
		if n == 0 {
			return c.Read(b)
		}
		err = nil
	}
	return
}

func (c *wsConn) Write(b []byte) (n int, err error) {
	err = c.Conn.WriteMessage(c.dtype, b)
	n = len(b)
	return
}

func (c *wsConn) SetDeadline(t time.Time) (err error) {
	if err = c.Conn.SetReadDeadline(t); err != nil {
		return
	}
	return c.Conn.SetWriteDeadline(t)
}

// msgType reads the configured message type out of an endpoint's option
// sets.
func msgType(ep transport.Endpoint) int {
	dtype, err := transport.GetOptInt(ep, Level, OptionMsgType)
	if err != nil {
		return MsgTypeBinary
	}
	return dtype
}

// dialer

func (d *dialer) Dial() (_ transport.Connection, err error) {
	var ws *websocket.Conn

	wd := &websocket.Dialer{
		WriteBufferPool: &sync.Pool{},
	}
	// config
	if val, ok := d.GetOption(OptionReadBufferSize); ok {
		wd.ReadBufferSize = OptionReadBufferSize.Value(val)
	}
	if val, ok := d.GetOption(OptionWriteBufferSize); ok {
		wd.WriteBufferSize = OptionWriteBufferSize.Value(val)
	}

	if ws, _, err = wd.Dial(d.url.String(), nil); err != nil {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.WithError(err).WithFields(log.Fields{"addr": d.addr, "action": "failed"}).Debug("dial")
		}
		return nil, err
	}

	c := &wsConn{
		Conn:  ws,
		laddr: ws.LocalAddr(),
		raddr: address(d.addr),
		dtype: msgType(d.EndpointOptions),
	}

	return transport.NewConnection(Transport, c, d.Options)
}

func (d *dialer) Close() error {
	d.EndpointOptions.Destroy()
	return nil
}

// listener

// Listen start listen
func (l *Listener) Listen() (err error) {
	select {
	case <-l.closedq:
		return errs.ErrClosed
	default:
	}

	pendingSize := ListenerOptionPendingSize.Value(
		l.GetOptionDefault(ListenerOptionPendingSize, 16))
	l.pending = make(chan *wsConn, pendingSize)
	// config
	if val, ok := l.GetOption(OptionReadBufferSize); ok {
		l.upgrader.ReadBufferSize = OptionReadBufferSize.Value(val)
	}
	if val, ok := l.GetOption(OptionWriteBufferSize); ok {
		l.upgrader.WriteBufferSize = OptionWriteBufferSize.Value(val)
	}

	var taddr *net.TCPAddr
	if taddr, err = transport.ResolveTCPAddr(l.URL.Host); err != nil {
		return err
	}

	if l.listener, err = net.ListenTCP("tcp", taddr); err != nil {
		return
	}
	l.htsvr = &http.Server{Handler: l.ServeMux}
	go l.htsvr.Serve(l.listener)
	return nil
}

// Accept waits for the next upgraded connection.
func (l *Listener) Accept() (transport.Connection, error) {
	if l.listener == nil {
		return nil, errs.ErrBadOperateState
	}

	select {
	case c := <-l.pending:
		return transport.NewConnection(Transport, c, l.Options)
	case <-l.closedq:
		return nil, errs.ErrClosed
	}
}

// Close stop listen
func (l *Listener) Close() error {
	l.Lock()
	select {
	case <-l.closedq:
		l.Unlock()
		return errs.ErrClosed
	default:
		close(l.closedq)
	}
	l.Unlock()

	l.EndpointOptions.Destroy()
	if l.listener != nil {
		l.listener.Close()
	}

CLOSING:
	for {
		select {
		case c := <-l.pending:
			c.Close()
		default:
			break CLOSING
		}
	}
	return nil
}

func (l *Listener) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	ws, err := l.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		return
	}

	select {
	case <-l.closedq:
		ws.Close()
		return
	default:
	}

	c := &wsConn{
		Conn:  ws,
		laddr: address(l.addr),
		raddr: ws.RemoteAddr(),
		dtype: msgType(l.EndpointOptions),
	}

	l.pending <- c
}

func (t wsTran) Scheme() string {
	return string(t)
}

// Level implements the Transport Level method.
func (t wsTran) Level() int {
	return Level
}

// NewOptionSet implements the Transport NewOptionSet method.
func (t wsTran) NewOptionSet() transport.OptionSet {
	return newOptionSet()
}

func (t wsTran) NewDialer(address string) (transport.Dialer, error) {
	var (
		err  error
		url  *url.URL
		addr string
	)
	if url, addr, err = parseAddressToURL(t, address); err != nil {
		return nil, err
	}

	d := &dialer{
		Options:         newWsOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		addr:            addr,
		url:             url,
	}
	return d, nil
}

func (t wsTran) NewListener(address string) (transport.Listener, error) {
	var (
		err  error
		url  *url.URL
		addr string
	)
	if url, addr, err = parseAddressToURL(t, address); err != nil {
		return nil, err
	}
	if url.Path == "" {
		url.Path = "/"
	}

	l := &Listener{
		Options:         newWsOptions(),
		EndpointOptions: transport.NewEndpointOptions(t),
		addr:            addr,
		URL:             url,
		upgrader: websocket.Upgrader{
			WriteBufferPool: &sync.Pool{},
		},
		closedq: make(chan struct{}),
	}
	l.ServeMux = http.NewServeMux()
	l.ServeMux.Handle(l.URL.Path, l)

	return l, nil
}

func parseAddressToURL(t transport.Transport, address string) (url *url.URL, addr string, err error) {
	if addr, err = transport.StripScheme(t, address); err != nil {
		return
	}
	url, err = url.Parse(address)
	return
}
