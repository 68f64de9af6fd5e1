// Package logger provides the leveled logging interface statdeck components
// log through. Tests capture output with BufferLogger, and the dashboard
// redirects the standard logger to a file while it owns the terminal.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "STATDECK_DEBUG"

// Level names a message's severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Logger takes Printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnabled reports whether STATDECK_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

type printLogger struct {
	out    *log.Logger
	prefix string
	debug  func() bool
}

// NewEnvLogger logs through the standard logger, so log.SetOutput and
// tea.LogToFile redirect it. Debug lines appear only while STATDECK_DEBUG
// is set. prefix tags every line, e.g. "[tween]".
func NewEnvLogger(prefix string) Logger {
	return &printLogger{out: log.Default(), prefix: prefix, debug: DebugEnabled}
}

// New logs bare lines to w. Debug lines are written only when debug is true.
func New(w io.Writer, prefix string, debug bool) Logger {
	return &printLogger{
		out:    log.New(w, "", 0),
		prefix: prefix,
		debug:  func() bool { return debug },
	}
}

func (l *printLogger) print(level Level, format string, args []interface{}) {
	if level == LevelDebug && !l.debug() {
		return
	}
	tag := l.prefix
	if level == LevelWarn || level == LevelError {
		tag += " " + strings.ToUpper(string(level)) + ":"
	}
	l.out.Print(tag + " " + fmt.Sprintf(format, args...))
}

func (l *printLogger) Debug(format string, args ...interface{}) { l.print(LevelDebug, format, args) }
func (l *printLogger) Info(format string, args ...interface{})  { l.print(LevelInfo, format, args) }
func (l *printLogger) Warn(format string, args ...interface{})  { l.print(LevelWarn, format, args) }
func (l *printLogger) Error(format string, args ...interface{}) { l.print(LevelError, format, args) }

type noopLogger struct{}

// Noop returns a logger that discards everything.
func Noop() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Entry is one captured message.
type Entry struct {
	Level   Level
	Message string
}

// BufferLogger records messages in memory. It is safe to share with the
// inline counter's animation goroutine.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level Level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record(LevelDebug, format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record(LevelInfo, format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record(LevelWarn, format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record(LevelError, format, args) }

// HasLevel reports whether anything was logged at level.
func (l *BufferLogger) HasLevel(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the messages recorded so far.
func (l *BufferLogger) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}
