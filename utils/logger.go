package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger provides leveled, timestamped logging for the dashboard.
type Logger struct {
	info   *log.Logger
	warn   *log.Logger
	err    *log.Logger
	debug  *log.Logger
	color  bool
	debugs bool
}

// NewLogger creates a Logger writing info/warn/debug to stdout and errors to stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr, false)
}

// NewLoggerTo creates a Logger on the given writers. Colors are only emitted
// when out is a terminal-backed *os.File.
func NewLoggerTo(out, errOut io.Writer, debug bool) *Logger {
	_, isFile := out.(*os.File)
	return &Logger{
		info:   log.New(out, "", 0),
		warn:   log.New(out, "", 0),
		err:    log.New(errOut, "", 0),
		debug:  log.New(out, "", 0),
		color:  isFile,
		debugs: debug,
	}
}

// NewDiscardLogger returns a Logger that drops everything. Used by tests.
func NewDiscardLogger() *Logger {
	return NewLoggerTo(io.Discard, io.Discard, false)
}

// SetDebug toggles Debug output.
func (l *Logger) SetDebug(on bool) { l.debugs = on }

// DebugEnabled reports whether Debug lines are written.
func (l *Logger) DebugEnabled() bool { return l.debugs }

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) level(name, ansi string) string {
	if !l.color {
		return name
	}
	return "\033[" + ansi + "m" + name + "\033[0m"
}

func (l *Logger) line(level, format string) string {
	return fmt.Sprintf("[%s] %s %s", l.timestamp(), level, format)
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Printf(l.line(l.level("INFO ", "32"), format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Printf(l.line(l.level("WARN ", "33"), format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(l.line(l.level("ERROR", "31"), format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.debugs {
		return
	}
	l.debug.Printf(l.line(l.level("DEBUG", "36"), format), args...)
}
