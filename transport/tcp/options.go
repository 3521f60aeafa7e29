package tcp

// Level is the TCP transport's option namespace.
const Level = -3

// TCP option codes
const (
	// OptionNoDelay disables Nagle's algorithm. Value 0 or 1.
	OptionNoDelay = iota + 1
	// OptionKeepIdle is the idle time in seconds before the first
	// keepalive probe. Value > 0; negative means inherit the OS default.
	OptionKeepIdle
	// OptionKeepIntvl is the interval in seconds between keepalive
	// probes. Value > 0; negative means inherit the OS default.
	OptionKeepIntvl
	// OptionKeepCnt is the number of unanswered keepalive probes before
	// the connection is dropped. Value > 0; negative means inherit the
	// OS default.
	OptionKeepCnt
)
