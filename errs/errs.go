// Package errs defines the error vocabulary shared across the library.
package errs

// Err is a string constant error.
type Err string

func (e Err) Error() string {
	return string(e)
}

// errors
const (
	ErrClosed                = Err("object is closed")
	ErrTimeout               = Err("operation time out")
	ErrBadOperateState       = Err("bad operation state")
	ErrAddrInUse             = Err("address already in use")
	ErrOperationNotSupported = Err("operation not supported")
	ErrBadTransport          = Err("invalid or unsupported transport")
	ErrBadProtocol           = Err("invalid or unsupported protocol")
	ErrMsgTooLong            = Err("message is too long")

	// option errors
	ErrInvalidOptionValue = Err("invalid option value")
	ErrUnsupportedOption  = Err("unsupported option")
)
