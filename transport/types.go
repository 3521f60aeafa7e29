package transport

import (
	"github.com/spsock/spsock/options"
)

type (
	// Connection is a connection between peers.
	Connection interface {
		Transport() Transport
		IsRaw() bool

		Send(msg []byte, extras ...[]byte) error
		Recv() ([]byte, error)

		Close() error

		LocalAddress() string
		RemoteAddress() string
	}

	// Dialer represents one connect context. It owns its option sets and
	// releases them when closed.
	Dialer interface {
		options.Options
		Endpoint

		Dial() (Connection, error)
		Close() error
	}

	// Listener represents one bind context. It owns its option sets and
	// releases them when closed.
	Listener interface {
		options.Options
		Endpoint

		Listen() error
		Accept() (Connection, error)
		Close() error
	}

	// Transport is a stream transport.
	Transport interface {
		Scheme() string
		// Level is the transport's stable option namespace identifier.
		Level() int
		// NewOptionSet creates the transport's option set for one endpoint
		// configuration context. Transports without tunables return nil.
		NewOptionSet() OptionSet
		NewDialer(address string) (Dialer, error)
		NewListener(address string) (Listener, error)
	}

	// Socket is a capability over a live OS socket handle: it accepts
	// one-shot raw option writes and nothing else.
	Socket interface {
		SetSockOpt(level, name int, value []byte) error
	}
)
