//go:build darwin
// +build darwin

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
	// Darwin names the keepalive idle time TCP_KEEPALIVE.
	tcpKeepIdle  = unix.TCP_KEEPALIVE
	tcpKeepIntvl = unix.TCP_KEEPINTVL
	tcpKeepCnt   = unix.TCP_KEEPCNT
)

const platformCaps = capKeepAlive | capNoDelay | capKeepIdle | capKeepIntvl | capKeepCnt

func setSockOpt(fd uintptr, level, name int, value []byte) error {
	return unix.SetsockoptInt(int(fd), level, name, transport.DecodeOptionValue(value))
}
