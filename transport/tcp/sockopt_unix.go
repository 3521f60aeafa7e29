//go:build !linux && !darwin && !windows && !plan9 && !js
// +build !linux,!darwin,!windows,!plan9,!js

package tcp

import (
	"golang.org/x/sys/unix"

	"github.com/spsock/spsock/transport"
)

const (
	solSocket   = unix.SOL_SOCKET
	soSndBuf    = unix.SO_SNDBUF
	soRcvBuf    = unix.SO_RCVBUF
	soKeepAlive = unix.SO_KEEPALIVE

	ipProtoTCP = unix.IPPROTO_TCP
	tcpNoDelay = unix.TCP_NODELAY

	// unused, the keepalive tunables are not exposed here
	tcpKeepIdle  = 0
	tcpKeepIntvl = 0
	tcpKeepCnt   = 0
)

// Per connection keepalive tunables are not portable across the remaining
// unixes; only the toggles are exposed.
const platformCaps = capKeepAlive | capNoDelay

func setSockOpt(fd uintptr, level, name int, value []byte) error {
	return unix.SetsockoptInt(int(fd), level, name, transport.DecodeOptionValue(value))
}
