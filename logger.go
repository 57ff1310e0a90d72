package easylog

import "io"

// Logger is a named node in a logger tree. Each node carries its own minimum
// level, format template and optionally a destination; a node without a
// destination forwards rendered output to the nearest ancestor that owns
// one. Levels are never inherited: every node gates on its own level field.
//
// The tree is not synchronized. Mutating level, format or destination while
// other goroutines log through the tree requires external locking.
type Logger struct {
	name   string
	parent *Logger
	level  Level
	dest   Destination
	format string
}

// New returns a root logger writing to dest. A nil dest selects the
// process-wide default console destination; a root logger always owns a
// destination.
func New(name string, dest Destination) *Logger {
	if dest == nil {
		dest = DefaultDestination()
	}
	return &Logger{
		name:   name,
		level:  INFO,
		dest:   dest,
		format: DefaultFormat,
	}
}

// Child returns a new logger parented to l. It owns no destination: every
// accepted message is forwarded up the chain and written by the nearest
// ancestor that owns one. Children cannot be re-parented, so the tree stays
// acyclic by construction.
func (l *Logger) Child(name string) *Logger {
	return &Logger{
		name:   name,
		parent: l,
		level:  INFO,
		format: DefaultFormat,
	}
}

// Name returns the logger's display name.
func (l *Logger) Name() string { return l.name }

// Level returns the logger's minimum accepted level.
func (l *Logger) Level() Level { return l.level }

// SetLevel sets the logger's minimum accepted level.
func (l *Logger) SetLevel(level Level) { l.level = level }

// Format returns the logger's format template.
func (l *Logger) Format() string { return l.format }

// SetFormat sets the format template. Only messages dispatched afterwards
// are affected; nothing is re-rendered.
func (l *Logger) SetFormat(format string) { l.format = format }

// Destination returns the logger's owned destination, or nil when the node
// delegates to its parent.
func (l *Logger) Destination() Destination { return l.dest }

// SetDestination re-targets the logger. The destination is borrowed: the
// caller keeps ownership and must keep it alive for as long as any logger
// can reach it. Setting nil on a non-root node restores delegation to the
// parent.
func (l *Logger) SetDestination(d Destination) { l.dest = d }

// IsLevel reports whether a message at level would reach a destination
// through this logger: either this node accepts it, or the node owns no
// destination and an ancestor accepts it. Only destination ownership decides
// whether the check climbs; the level itself never inherits.
func (l *Logger) IsLevel(level Level) bool {
	if level >= l.level {
		return true
	}
	if l.dest == nil && l.parent != nil {
		return l.parent.IsLevel(level)
	}
	return false
}

// Log returns a new Sink bound to this logger and the given call site.
// Level gating is the caller's job: check IsLevel first so filtered-out
// messages skip the accumulator work entirely. The level helpers on Logger
// do exactly that.
func (l *Logger) Log(level Level, file string, line int, fn string) *Sink {
	return newSink(l, level, file, line, fn)
}

// resolved returns the first owned destination on the chain starting at l.
// It panics when no ancestor owns one: a root logger must always be given a
// destination, so reaching that state is a programmer error, not a runtime
// condition.
func (l *Logger) resolved() Destination {
	for n := l; n != nil; n = n.parent {
		if n.dest != nil {
			return n.dest
		}
	}
	panic(panicMsgNoDest)
}

// Flush flushes the resolved destination.
func (l *Logger) Flush() error {
	return l.resolved().Flush()
}

// dispatch renders and writes msg at the first node on the chain that owns a
// destination, so exactly one physical write occurs per message. The %N
// field names origin, not the node doing the write: a forwarded message
// stays attributed to the logger it entered at.
func (l *Logger) dispatch(level Level, origin *Logger, file string, line int, fn, msg string) {
	if l.dest == nil {
		if l.parent == nil {
			panic(panicMsgNoDest)
		}
		l.parent.dispatch(level, origin, file, line, fn, msg)
		return
	}
	_, _ = io.WriteString(l.dest, render(l.format, level, origin.name, file, line, fn, msg)+"\n")
}
