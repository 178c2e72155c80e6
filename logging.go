package postfx

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the logging hook the pass and the target cache report through.
// Debug lines cover per-frame noise (bind group rebuilds, target
// allocations); everything else is lifecycle and failure reporting.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes leveled lines through a single stdlib logger. Debug
// output is toggled with an atomic so render-loop call sites never contend
// on a lock.
type DefaultLogger struct {
	debug atomic.Bool
	l     *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLoggerTo(os.Stderr, prefix, debug)
}

// NewLoggerTo builds a logger writing to w, for tests and for hosts that
// redirect output.
func NewLoggerTo(w io.Writer, prefix string, debug bool) *DefaultLogger {
	if prefix != "" {
		prefix = prefix + " "
	}
	dl := &DefaultLogger{
		l: log.New(w, prefix, log.LstdFlags|log.Lmicroseconds),
	}
	dl.debug.Store(debug)
	return dl
}

// SetDebug toggles debug output at runtime.
func (dl *DefaultLogger) SetDebug(enabled bool) { dl.debug.Store(enabled) }

func (dl *DefaultLogger) Debugf(format string, args ...any) {
	if !dl.debug.Load() {
		return
	}
	dl.l.Printf("DEBUG "+format, args...)
}

func (dl *DefaultLogger) Infof(format string, args ...any) {
	dl.l.Printf("INFO "+format, args...)
}

func (dl *DefaultLogger) Warnf(format string, args ...any) {
	dl.l.Printf("WARN "+format, args...)
}

func (dl *DefaultLogger) Errorf(format string, args ...any) {
	dl.l.Printf("ERROR "+format, args...)
}

// NewNopLogger returns the logger used when a host configures none.
func NewNopLogger() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}
