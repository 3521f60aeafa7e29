package transport

import (
	"github.com/spsock/spsock/options"
)

type optionName int

const (
	optionNameMaxRecvMsgSize optionName = iota
	optionNameRawRecvBufSize
	optionNameConnRawMode
)

// Options
var (
	OptionMaxRecvMsgSize = options.NewUint32Option(optionNameMaxRecvMsgSize)
	OptionRawRecvBufSize = options.NewUint32Option(optionNameRawRecvBufSize)
	OptionConnRawMode    = options.NewBoolOption(optionNameConnRawMode)
)

// NewConnOptions creates the typed option store a dialer or listener hands
// to its connections.
func NewConnOptions() options.Options {
	return options.NewOptionsWithAccepts(
		OptionMaxRecvMsgSize,
		OptionRawRecvBufSize,
		OptionConnRawMode,
	)
}
