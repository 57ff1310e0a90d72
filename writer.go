package easylog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Destination is the text sink a Logger writes rendered lines to.
// Destinations are borrowed: the logger never closes them, and a destination
// must outlive every logger that can reach it, directly or through children.
type Destination interface {
	io.Writer
	Flush() error
}

type flusher interface{ Flush() error }
type syncer interface{ Sync() error }

// writerDestination adapts an io.Writer to a Destination.
type writerDestination struct {
	w io.Writer
}

// NewDestination wraps w as a Destination. Flush forwards to the writer's
// own Flush or Sync method when it has one and is a no-op otherwise.
func NewDestination(w io.Writer) Destination {
	return &writerDestination{w: w}
}

func (d *writerDestination) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

func (d *writerDestination) Flush() error {
	switch w := d.w.(type) {
	case flusher:
		return w.Flush()
	case syncer:
		return w.Sync()
	}
	return nil
}

// NewFileDestination returns a rolling-file Destination backed by lumberjack.
// Rotation policy (size, backups, age) is entirely lumberjack's; the logger
// core never rotates.
func NewFileDestination(path string, maxSizeMB, maxBackups, maxAgeDays int) Destination {
	return NewDestination(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	})
}

// NewZerologDestination forwards each rendered line to z as a plain message,
// letting applications that already route output through zerolog keep their
// existing writers and hooks. zerolog.Logger is itself an io.Writer.
func NewZerologDestination(z zerolog.Logger) Destination {
	return NewDestination(z)
}

// multiDestination fans each write out to every destination, mirroring the
// io.MultiWriter contract: the first write error stops the fan-out.
type multiDestination struct {
	dests []Destination
}

// MultiDestination returns a Destination that duplicates writes and flushes
// to every given destination.
func MultiDestination(dests ...Destination) Destination {
	return &multiDestination{dests: dests}
}

func (m *multiDestination) Write(p []byte) (int, error) {
	for _, d := range m.dests {
		n, err := d.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (m *multiDestination) Flush() error {
	var first error
	for _, d := range m.dests {
		if err := d.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// destHolder exists because atomic.Pointer needs a concrete type to point at.
type destHolder struct {
	dest Destination
}

var defaultDest atomic.Pointer[destHolder]

// DefaultDestination returns the process-wide console destination used by
// root loggers that were not given an explicit destination. It is stdout
// unless replaced, initialized on first use.
func DefaultDestination() Destination {
	if h := defaultDest.Load(); h != nil {
		return h.dest
	}
	defaultDest.CompareAndSwap(nil, &destHolder{dest: NewDestination(os.Stdout)})
	return defaultDest.Load().dest
}

// SetDefaultDestination replaces the process-wide console destination.
// Passing nil resets it to stdout. Loggers already holding the previous
// destination are unaffected.
func SetDefaultDestination(d Destination) {
	if d == nil {
		defaultDest.Store(nil)
		return
	}
	defaultDest.Store(&destHolder{dest: d})
}
