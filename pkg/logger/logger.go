// Package logger defines the logging interface shared by the estimator, its storage and its shells.
// Backends live in the zerolog and logrus subpackages.
package logger

import (
	"fmt"
	"strings"
)

type Level int8

const (
	TraceLevel Level = iota // TraceLevel is used for detailed debugging information.
	DebugLevel              // DebugLevel is used for debugging information.
	InfoLevel               // InfoLevel is used for informational messages.
	WarnLevel               // WarnLevel is used for warning messages.
	ErrorLevel              // ErrorLevel is used for error messages.
	FatalLevel              // FatalLevel is used for fatal messages that cause the program to exit.
	Disabled                // Disabled turns logging off.
)

var levelNames = map[Level]string{
	TraceLevel: "trace",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
	Disabled:   "disabled",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel converts a level name into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return Disabled, fmt.Errorf("unknown log level %q", name)
}

type Logger interface {
	WithField(key string, value any) Logger  // WithField returns a logger with the given key-value pair.
	WithFields(fields map[string]any) Logger // WithFields returns a logger with the given fields.
	WithError(err error) Logger              // WithError returns a logger with the given error.

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any) // Fatal logs the message and then exits the program.

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level) // SetLevel sets the logging level for the logger.
	GetLevel() Level      // GetLevel returns the logging level for the logger.
}

// Config selects and configures a logging backend
type Config struct {
	Backend    string // zerolog or logrus
	Level      string
	TimeLayout string
	Colored    bool
	JSON       bool
}
