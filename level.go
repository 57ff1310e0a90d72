package easylog

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the severity of a log message. Levels are totally ordered by
// declaration: a logger accepts a message whose level is at or above the
// logger's configured minimum.
type Level uint8

const (
	// TRACE is the most detailed level, used for scope tracing.
	TRACE Level = iota

	// DEBUG is for diagnostic messages.
	DEBUG

	// INFO is for general progress messages. It is the default minimum
	// level of every logger.
	INFO

	// WARNING is for conditions that may indicate problems.
	WARNING

	// ERROR is for failures that prevent an operation from completing.
	ERROR

	// FATAL is for unrecoverable failures. Logging at FATAL flushes the
	// destination and terminates the process.
	FATAL
)

// levelNames holds pre-computed names indexed by level rank.
var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL"}

// String returns the level's textual name.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel parses a textual level name, case-insensitively. "warn" is
// accepted as an alias for WARNING.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warning", "warn":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	}
	return INFO, errors.Errorf("%s: %q", errMsgBadLevel, s)
}
