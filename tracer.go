package easylog

// Tracer emits paired enter/exit messages bracketing a lexical scope. Both
// lines go out at TRACE level through the normal dispatch path, so they
// honor the logger's level filtering and format template. Close the tracer
// with defer so the "exiting" line is emitted on every unwind path,
// including panics.
type Tracer struct {
	logger *Logger
	name   string
	file   string
	line   int
	fn     string
}

// NewTracer logs the "entering" line and returns a tracer whose Close emits
// the matching "exiting" line.
func NewTracer(l *Logger, name string) *Tracer {
	return newTracer(l, name)
}

// TraceScope logs the scope entry and returns the exit closer, for use as
//
//	defer easylog.TraceScope(log, "loadIndex")()
func TraceScope(l *Logger, name string) func() {
	return newTracer(l, name).Close
}

func newTracer(l *Logger, name string) *Tracer {
	file, line, fn := callSite(3)
	t := &Tracer{logger: l, name: name, file: file, line: line, fn: fn}
	t.write("entering " + name)
	return t
}

// Close logs the "exiting" line.
func (t *Tracer) Close() {
	t.write("exiting " + t.name)
}

func (t *Tracer) write(msg string) {
	if !t.logger.IsLevel(TRACE) {
		return
	}
	s := t.logger.Log(TRACE, t.file, t.line, t.fn)
	s.Append(msg)
	s.Close()
}
