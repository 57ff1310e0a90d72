package easylog

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// exitFunc is invoked after a fatal message has been written and flushed.
var exitFunc = os.Exit

// SetExitFunc installs fn as the process-termination hook used by Fatal
// logging and failed assertions, and returns the previous hook. A nil fn
// restores os.Exit. Injectable so embedding applications and tests can
// supply their own termination policy.
func SetExitFunc(fn func(code int)) func(int) {
	prev := exitFunc
	if fn == nil {
		fn = os.Exit
	}
	exitFunc = fn
	return prev
}

// callSite captures the file name, line and bare function name skip frames
// above this call.
func callSite(skip int) (file string, line int, fn string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return unknownSite, 0, unknownSite
	}
	file = filepath.Base(file)
	fn = unknownSite
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if i := strings.LastIndexByte(fn, '.'); i >= 0 {
			fn = fn[i+1:]
		}
	}
	return file, line, fn
}

// Trace logs v at TRACE level.
func (l *Logger) Trace(v ...interface{}) { l.emit(TRACE, v) }

// Debug logs v at DEBUG level.
func (l *Logger) Debug(v ...interface{}) { l.emit(DEBUG, v) }

// Info logs v at INFO level.
func (l *Logger) Info(v ...interface{}) { l.emit(INFO, v) }

// Warning logs v at WARNING level.
func (l *Logger) Warning(v ...interface{}) { l.emit(WARNING, v) }

// Error logs v at ERROR level.
func (l *Logger) Error(v ...interface{}) { l.emit(ERROR, v) }

// Fatal logs v at FATAL level, flushes the resolved destination and invokes
// the process-termination hook.
func (l *Logger) Fatal(v ...interface{}) { l.emit(FATAL, v) }

// Tracef logs a formatted message at TRACE level.
func (l *Logger) Tracef(format string, v ...interface{}) { l.emitf(TRACE, format, v) }

// Debugf logs a formatted message at DEBUG level.
func (l *Logger) Debugf(format string, v ...interface{}) { l.emitf(DEBUG, format, v) }

// Infof logs a formatted message at INFO level.
func (l *Logger) Infof(format string, v ...interface{}) { l.emitf(INFO, format, v) }

// Warningf logs a formatted message at WARNING level.
func (l *Logger) Warningf(format string, v ...interface{}) { l.emitf(WARNING, format, v) }

// Errorf logs a formatted message at ERROR level.
func (l *Logger) Errorf(format string, v ...interface{}) { l.emitf(ERROR, format, v) }

// Fatalf logs a formatted message at FATAL level, flushes the resolved
// destination and invokes the process-termination hook.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.emitf(FATAL, format, v) }

func (l *Logger) emit(level Level, v []interface{}) {
	if !l.IsLevel(level) {
		return
	}
	file, line, fn := callSite(3)
	s := l.Log(level, file, line, fn)
	s.Append(v...)
	s.Close()
	if level == FATAL {
		_ = l.Flush()
		exitFunc(1)
	}
}

func (l *Logger) emitf(level Level, format string, v []interface{}) {
	if !l.IsLevel(level) {
		return
	}
	file, line, fn := callSite(3)
	s := l.Log(level, file, line, fn)
	s.Appendf(format, v...)
	s.Close()
	if level == FATAL {
		_ = l.Flush()
		exitFunc(1)
	}
}
