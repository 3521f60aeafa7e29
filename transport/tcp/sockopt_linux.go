//go:build linux
// +build linux

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

	ipProtoTCP   = unix.IPPROTO_TCP
	tcpNoDelay   = unix.TCP_NODELAY
	tcpKeepIdle  = unix.TCP_KEEPIDLE
	tcpKeepIntvl = unix.TCP_KEEPINTVL
	tcpKeepCnt   = unix.TCP_KEEPCNT
)

// Linux exposes the full set of keepalive tunables.
const platformCaps = capKeepAlive | capNoDelay | capKeepIdle | capKeepIntvl | capKeepCnt

func setSockOpt(fd uintptr, level, name int, value []byte) error {
	return unix.SetsockoptInt(int(fd), level, name, transport.DecodeOptionValue(value))
}
