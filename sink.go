package easylog

import (
	"fmt"
	"strings"
	"sync"
)

// sinkPool recycles message buffers across log calls to reduce allocations.
var sinkPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// Sink accumulates the text of one pending log message. It is single-use:
// obtain one from Logger.Log, append to it, then Close it to hand the
// accumulated text to the logger for rendering and dispatch. Intermediate
// appends never write anything; only Close does.
type Sink struct {
	logger *Logger
	level  Level
	file   string
	line   int
	fn     string
	buf    *strings.Builder
	closed bool
}

func newSink(l *Logger, level Level, file string, line int, fn string) *Sink {
	buf := sinkPool.Get().(*strings.Builder)
	buf.Reset()
	return &Sink{
		logger: l,
		level:  level,
		file:   file,
		line:   line,
		fn:     fn,
		buf:    buf,
	}
}

// Append renders each value via its natural fmt representation and
// concatenates it to the message, in call order.
func (s *Sink) Append(v ...interface{}) *Sink {
	if !s.closed {
		_, _ = fmt.Fprint(s.buf, v...)
	}
	return s
}

// Appendf appends a fmt.Sprintf-style formatted fragment.
func (s *Sink) Appendf(format string, v ...interface{}) *Sink {
	if !s.closed {
		_, _ = fmt.Fprintf(s.buf, format, v...)
	}
	return s
}

// Close dispatches the accumulated text, empty or not, to the bound logger.
// Dispatch happens at most once; further Close calls are no-ops. Close does
// not re-check IsLevel: gating happened before the sink was created.
func (s *Sink) Close() {
	if s.closed {
		return
	}
	s.closed = true
	msg := s.buf.String()
	sinkPool.Put(s.buf)
	s.buf = nil
	s.logger.dispatch(s.level, s.logger, s.file, s.line, s.fn, msg)
}
