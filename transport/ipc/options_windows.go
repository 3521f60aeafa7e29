//go:build windows
// +build windows

package ipc

import (
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

type optionName int

const (
	listenerOptionNameSecurityDescriptor optionName = iota
	listenerOptionNameInputBufferSize
	listenerOptionNameOutputBufferSize
)

// Options
var (
	// ListenerOptionSecurityDescriptor represents a Windows security
	// descriptor in SDDL format (string).  This can only be set on
	// a Listener, and must be set before the Listen routine
	// is called.
	ListenerOptionSecurityDescriptor = options.NewStringOption(listenerOptionNameSecurityDescriptor)

	// ListenerOptionInputBufferSize represents the Windows Named Pipe
	// input buffer size in bytes (type int).  Default is 4096.
	ListenerOptionInputBufferSize = options.NewIntOption(listenerOptionNameInputBufferSize)

	// ListenerOptionOutputBufferSize represents the Windows Named Pipe
	// output buffer size in bytes (type int).  Default is 4096.
	ListenerOptionOutputBufferSize = options.NewIntOption(listenerOptionNameOutputBufferSize)
)

func newListenerOptions() options.Options {
	return options.NewOptionsWithAccepts(
		transport.OptionMaxRecvMsgSize,
		transport.OptionRawRecvBufSize,
		transport.OptionConnRawMode,
		ListenerOptionSecurityDescriptor,
		ListenerOptionInputBufferSize,
		ListenerOptionOutputBufferSize,
	)
}
