package ws

import (
	"github.com/gorilla/websocket"
	"github.com/spsock/spsock/options"
	"github.com/spsock/spsock/transport"
)

// Level is the WebSocket transport's option namespace.
const Level = -4

// WebSocket option codes
const (
	// OptionMsgType selects the WebSocket message type used for outgoing
	// frames. Value MsgTypeText or MsgTypeBinary.
	OptionMsgType = iota + 1
)

// OptionMsgType values, matching the gorilla message type constants.
const (
	MsgTypeText   = websocket.TextMessage
	MsgTypeBinary = websocket.BinaryMessage
)

type optionName int

const (
	optionNameReadBufferSize optionName = iota
	optionNameWriteBufferSize
	listenerOptionNamePendingSize
)

// Options
var (
	OptionReadBufferSize  = options.NewIntOption(optionNameReadBufferSize)
	OptionWriteBufferSize = options.NewIntOption(optionNameWriteBufferSize)
	// ListenerOptionPendingSize is the accept queue length of a listener.
	ListenerOptionPendingSize = options.NewIntOption(listenerOptionNamePendingSize)
)

func newWsOptions() options.Options {
	return options.NewOptionsWithAccepts(
		transport.OptionMaxRecvMsgSize,
		transport.OptionRawRecvBufSize,
		transport.OptionConnRawMode,
		OptionReadBufferSize,
		OptionWriteBufferSize,
		ListenerOptionPendingSize,
	)
}
