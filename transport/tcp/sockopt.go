package tcp

import (
	"fmt"
	"syscall"

	"github.com/spsock/spsock/transport"
)

type (
	// capability describes which TCP tunables the build platform exposes.
	// It is resolved once, at build time, by the per platform files.
	capability uint

	// rawSocket adapts a syscall.RawConn to the transport.Socket
	// capability.
	rawSocket struct {
		rc syscall.RawConn
	}
)

const (
	capKeepAlive capability = 1 << iota
	capNoDelay
	capKeepIdle
	capKeepIntvl
	capKeepCnt
)

func (caps capability) has(c capability) bool {
	return caps&c != 0
}

func newRawSocket(conn syscall.Conn) (transport.Socket, error) {
	rc, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}
	return rawSocket{rc: rc}, nil
}

// SetSockOpt implements the transport.Socket SetSockOpt method.
func (s rawSocket) SetSockOpt(level, name int, value []byte) error {
	var serr error
	if err := s.rc.Control(func(fd uintptr) {
		serr = setSockOpt(fd, level, name, value)
	}); err != nil {
		return err
	}
	return serr
}

// applyOptions pushes every accumulated option value of ep onto sock. It
// runs once per connection, strictly before any I/O on the handle. Buffer
// sizes go first; tunables the platform does not expose are skipped, as
// are keepalive tunables still set to the OS default sentinel. Any
// rejected value aborts the whole endpoint establishment.
func applyOptions(ep transport.Endpoint, sock transport.Socket, caps capability) error {
	value := make([]byte, transport.OptionSize)

	// The endpoint contract fixes option values at one native integer;
	// anything else is a programming error.
	get := func(level, option int) int {
		sz, err := ep.GetOpt(level, option, value)
		if err != nil {
			panic(fmt.Sprintf("tcp: endpoint option (%d,%d): %v", level, option, err))
		}
		if sz != transport.OptionSize {
			panic(fmt.Sprintf("tcp: endpoint option (%d,%d): size %d", level, option, sz))
		}
		return transport.DecodeOptionValue(value)
	}

	get(transport.LevelSocket, transport.OptionSndBuf)
	if err := sock.SetSockOpt(solSocket, soSndBuf, value); err != nil {
		return err
	}

	get(transport.LevelSocket, transport.OptionRcvBuf)
	if err := sock.SetSockOpt(solSocket, soRcvBuf, value); err != nil {
		return err
	}

	if caps.has(capKeepAlive) {
		get(transport.LevelSocket, transport.OptionKeepAlive)
		if err := sock.SetSockOpt(solSocket, soKeepAlive, value); err != nil {
			return err
		}
	}

	if caps.has(capNoDelay) {
		get(Level, OptionNoDelay)
		if err := sock.SetSockOpt(ipProtoTCP, tcpNoDelay, value); err != nil {
			return err
		}
	}

	if caps.has(capKeepIdle) {
		if get(Level, OptionKeepIdle) >= 0 {
			if err := sock.SetSockOpt(ipProtoTCP, tcpKeepIdle, value); err != nil {
				return err
			}
		}
	}

	if caps.has(capKeepIntvl) {
		if get(Level, OptionKeepIntvl) >= 0 {
			if err := sock.SetSockOpt(ipProtoTCP, tcpKeepIntvl, value); err != nil {
				return err
			}
		}
	}

	if caps.has(capKeepCnt) {
		if get(Level, OptionKeepCnt) >= 0 {
			if err := sock.SetSockOpt(ipProtoTCP, tcpKeepCnt, value); err != nil {
				return err
			}
		}
	}

	return nil
}
