// Package log provides a small prefixed, colored logger for the services.
package log

import (
	"errors"
	"io"
	stdlog "log"

	"github.com/gridforge/labyrinth-api/config"
)

// Logger writes leveled, color-prefixed lines to a single writer.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
}

// New creates a Logger that tags every line with the given prefix in the
// given ANSI color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger requires a writer")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(w, "", stdlog.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarnColor, "WARN", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg)
}
