// Package logger provides a small leveled logger. Three levels: off,
// normal (info/warn/error), and verbose (adds debug). Safe for
// concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls verbosity.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error.
	LevelNormal
	// LevelVerbose enables everything including debug.
	LevelVerbose
)

// ParseLevel maps a config string to a Level. Unknown values fall back
// to LevelNormal.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet":
		return LevelOff
	case "verbose", "debug":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	out   map[Level]*log.Logger
	warn  *log.Logger
	err   *log.Logger
}

// New creates a logger writing to out. If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	flags := log.Ltime
	return &Logger{
		level: level,
		out: map[Level]*log.Logger{
			LevelVerbose: log.New(out, "[DBG] ", flags),
			LevelNormal:  log.New(out, "[INF] ", flags),
		},
		warn: log.New(out, "[WRN] ", flags),
		err:  log.New(out, "[ERR] ", flags),
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Debug logs at debug level (visible only in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.emit(LevelVerbose, l.out[LevelVerbose], format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.emit(LevelNormal, l.out[LevelNormal], format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.emit(LevelNormal, l.warn, format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.emit(LevelNormal, l.err, format, args...)
}

func (l *Logger) emit(min Level, lg *log.Logger, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level >= min {
		lg.Output(3, fmt.Sprintf(format, args...))
	}
}
