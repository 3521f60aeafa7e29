package transport

import (
	"testing"
)

func TestRegistry(t *testing.T) {
	tran := testTran{}
	RegisterTransport(tran)

	if GetTransport("test") != tran {
		t.Errorf("registered transport not found")
	}
	if GetTransport("nosuch") != nil {
		t.Errorf("unknown scheme resolved")
	}
	if GetTransportFromAddr("test://somewhere") != tran {
		t.Errorf("transport not found by address")
	}
}

func TestStripScheme(t *testing.T) {
	tran := testTran{}

	addr, err := StripScheme(tran, "test://127.0.0.1:5000")
	if err != nil {
		t.Fatalf("StripScheme error: %s", err)
	}
	if addr != "127.0.0.1:5000" {
		t.Errorf("stripped address: %q", addr)
	}

	if _, err = StripScheme(tran, "other://127.0.0.1:5000"); err != ErrBadTran {
		t.Errorf("StripScheme error: %v", err)
	}
}

func TestParseScheme(t *testing.T) {
	if s := ParseScheme("tcp://127.0.0.1:5000"); s != "tcp" {
		t.Errorf("scheme: %q", s)
	}
	if s := ParseScheme("127.0.0.1:5000"); s != "" {
		t.Errorf("scheme: %q", s)
	}
}

func TestResolveTCPAddr(t *testing.T) {
	addr, err := ResolveTCPAddr("*:5000")
	if err != nil {
		t.Fatalf("ResolveTCPAddr error: %s", err)
	}
	if addr.Port != 5000 {
		t.Errorf("port: %d", addr.Port)
	}
}
