//go:build plan9 || js
// +build plan9 js

package tcp

import (
	"github.com/spsock/spsock/errs"
)

const (
	solSocket   = 0
	soSndBuf    = 0
	soRcvBuf    = 0
	soKeepAlive = 0

	ipProtoTCP   = 0
	tcpNoDelay   = 0
	tcpKeepIdle  = 0
	tcpKeepIntvl = 0
	tcpKeepCnt   = 0
)

const platformCaps = capability(0)

func setSockOpt(fd uintptr, level, name int, value []byte) error {
	return errs.ErrOperationNotSupported
}
