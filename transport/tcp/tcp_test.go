package tcp

import (
	"bytes"
	"testing"

	"github.com/spsock/spsock/transport"
)

func TestRegistered(t *testing.T) {
	if transport.GetTransport("tcp") != Transport {
		t.Errorf("tcp transport not registered")
	}
	if transport.GetTransportFromAddr("tcp://127.0.0.1:0") != Transport {
		t.Errorf("tcp transport not found by address")
	}
}

func TestLoopback(t *testing.T) {
	l, err := Transport.NewListener("tcp://127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewListener error: %s", err)
	}
	if err = l.Listen(); err != nil {
		t.Fatalf("Listen error: %s", err)
	}
	defer l.Close()

	d, err := Transport.NewDialer(l.(*listener).Address())
	if err != nil {
		t.Fatalf("NewDialer error: %s", err)
	}
	defer d.Close()

	// tune the connect side before establishment
	if err = transport.SetOptInt(d, Level, OptionNoDelay, 1); err != nil {
		t.Fatalf("set nodelay error: %s", err)
	}
	if err = transport.SetOptInt(d, Level, OptionKeepIdle, 30); err != nil {
		t.Fatalf("set keepidle error: %s", err)
	}
	if v, err := transport.GetOptInt(d, Level, OptionNoDelay); err != nil || v != 1 {
		t.Fatalf("get nodelay: %d, %v", v, err)
	}

	acceptq := make(chan transport.Connection, 1)
	errq := make(chan error, 1)
	go func() {
		sc, err := l.Accept()
		if err != nil {
			errq <- err
			return
		}
		acceptq <- sc
	}()

	cc, err := d.Dial()
	if err != nil {
		t.Fatalf("Dial error: %s", err)
	}
	defer cc.Close()

	var sc transport.Connection
	select {
	case sc = <-acceptq:
	case err = <-errq:
		t.Fatalf("Accept error: %s", err)
	}
	defer sc.Close()

	content := []byte("hello")
	if err = cc.Send(content); err != nil {
		t.Fatalf("Send error: %s", err)
	}
	reply, err := sc.Recv()
	if err != nil {
		t.Fatalf("Recv error: %s", err)
	}
	if !bytes.Equal(content, reply) {
		t.Errorf("Recv content: %q, want %q", reply, content)
	}

	if err = sc.Send(reply); err != nil {
		t.Fatalf("Send error: %s", err)
	}
	if reply, err = cc.Recv(); err != nil {
		t.Fatalf("Recv error: %s", err)
	}
	if !bytes.Equal(content, reply) {
		t.Errorf("Recv content: %q, want %q", reply, content)
	}
}
