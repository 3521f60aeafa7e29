//go:build windows
// +build windows

package tcp

import (
	"golang.org/x/sys/windows"
)

const (
	solSocket   = windows.SOL_SOCKET
	soSndBuf    = windows.SO_SNDBUF
	soRcvBuf    = windows.SO_RCVBUF
	soKeepAlive = windows.SO_KEEPALIVE

	ipProtoTCP = windows.IPPROTO_TCP
	tcpNoDelay = windows.TCP_NODELAY

	// unused, winsock keeps control of the keepalive timing
	tcpKeepIdle  = 0
	tcpKeepIntvl = 0
	tcpKeepCnt   = 0
)

const platformCaps = capKeepAlive | capNoDelay

func setSockOpt(fd uintptr, level, name int, value []byte) error {
	return windows.Setsockopt(windows.Handle(fd), int32(level), int32(name), &value[0], int32(len(value)))
}
