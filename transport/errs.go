package transport

import (
	"github.com/spsock/spsock/errs"
)

// errors
const (
	ErrBadTran      = errs.Err("bad transport")
	ErrConnRefused  = errs.Err("connection refused")
	ErrNotListening = errs.Err("not listening")
)
