package logger

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
)

// Logger writes operational messages. Extra args may be errors, maps of
// custom data or *http.Request values.
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// StdLogger writes to a standard library logger only.
type StdLogger struct {
	std *log.Logger
}

var _ Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	return &StdLogger{std: std}
}

func (l *StdLogger) Info(msg string, args ...interface{})  { l.print("ℹ️ ", msg, args) }
func (l *StdLogger) Warn(msg string, args ...interface{})  { l.print("⚠️ ", msg, args) }
func (l *StdLogger) Error(msg string, args ...interface{}) { l.print("❌", msg, args) }

func (l *StdLogger) print(prefix, msg string, args []interface{}) {
	l.std.Println(prefix, msg)
	for _, arg := range args {
		l.std.Printf("    %+v", arg)
	}
}

// RollbarLogger also reports warnings and errors to Rollbar.
type RollbarLogger struct {
	*StdLogger
}

var _ Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, token, env string) *RollbarLogger {
	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{StdLogger: NewStdLogger(std)}
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(append([]interface{}{msg}, args...)...)
	l.StdLogger.Warn(msg, args...)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(append([]interface{}{msg}, args...)...)
	l.StdLogger.Error(msg, args...)
}

// Close flushes reports still queued for Rollbar.
func (l *RollbarLogger) Close() {
	rollbar.Close()
}

// New returns a RollbarLogger when a token is configured, otherwise a
// StdLogger.
func New(std *log.Logger, rollbarToken, env string) Logger {
	if rollbarToken == "" {
		return NewStdLogger(std)
	}
	return NewRollbarLogger(std, rollbarToken, env)
}
