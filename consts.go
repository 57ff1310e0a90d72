package easylog

const (
	// DefaultFormat is the format template assigned to newly created loggers.
	DefaultFormat = "[%F:%C %P] %N %L: %S"

	defaultTimeLayout = "2006-01-02 15:04:05"
	emptyString       = ""
	unknownSite       = "???"
)

const (
	errMsgNilConfig     = "logging config is nil"
	errMsgConfigInvalid = "logging configuration is invalid"
	errMsgBadLevel      = "unknown log level"

	panicMsgNoDest = "easylog: no destination owned by logger or any ancestor"
)
