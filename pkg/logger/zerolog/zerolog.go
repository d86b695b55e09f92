package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

const (
	maxMessageSize = 60
	maxFileSize    = 18
	maxLineSize    = 4
)

// New creates a zerolog logger writing to out. Unless JSON output is requested
// the console writer prints coloured, fixed-width level, caller and message columns.
func New(cfg logger.Config, out io.Writer) (*zerolog.Logger, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var writer io.Writer = out
	if !cfg.JSON {
		writer = zerolog.ConsoleWriter{
			Out:             out,
			NoColor:         !cfg.Colored,
			TimeFormat:      cfg.TimeLayout,
			FormatLevel:     colorize(cfg.Colored, formatLevel),
			FormatMessage:   colorize(cfg.Colored, formatMessage),
			FormatCaller:    colorize(cfg.Colored, formatCaller),
			FormatTimestamp: colorize(cfg.Colored, timestampFormatter(cfg.TimeLayout)),
		}
	}

	log := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &log, nil
}

type formatter func(i any) (text string, paint func(format string, args ...any) string)

func colorize(colored bool, f formatter) zerolog.Formatter {
	return func(i any) string {
		text, paint := f(i)
		if !colored || paint == nil {
			return text
		}
		return paint("%s", text)
	}
}

func formatLevel(i any) (string, func(string, ...any) string) {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelTraceValue:
		return "[TRC]", term.Cyanf
	case zerolog.LevelDebugValue:
		return "[DBG]", term.Cyanf
	case zerolog.LevelInfoValue:
		return "[INF]", term.Greenf
	case zerolog.LevelWarnValue:
		return "[WAR]", term.Yellowf
	case zerolog.LevelErrorValue:
		return "[ERR]", term.Redf
	case zerolog.LevelFatalValue:
		return "[FTL]", term.Redf
	case zerolog.LevelPanicValue:
		return "[PAN]", term.Redf
	default:
		return "[UNK]", term.Whitef
	}
}

func formatMessage(i any) (string, func(string, ...any) string) {
	msg, ok := i.(string)
	if !ok || len(msg) == 0 {
		return ">", nil
	}

	if len(msg) > maxMessageSize {
		msg = msg[:maxMessageSize]
	}
	return fmt.Sprintf("> %-*s", maxMessageSize, msg), term.Whitef
}

func formatCaller(i any) (string, func(string, ...any) string) {
	name, ok := i.(string)
	if !ok || len(name) == 0 {
		return "", nil
	}

	file, line, found := strings.Cut(filepath.Base(name), ":")
	if !found {
		return file, nil
	}

	if len(file) > maxFileSize {
		file = file[:maxFileSize]
	}
	if len(line) > maxLineSize {
		line = line[len(line)-maxLineSize:]
	}

	return fmt.Sprintf("[%-*s:%*s]", maxFileSize, file, maxLineSize, line), term.Yellowf
}

func timestampFormatter(layout string) formatter {
	return func(i any) (string, func(string, ...any) string) {
		raw, ok := i.(string)
		if !ok {
			return fmt.Sprintf("[%v]", i), term.Cyanf
		}

		if ts, err := time.ParseInLocation(time.RFC3339, raw, time.Local); err == nil {
			raw = ts.In(time.Local).Format(layout)
		}
		return "[" + raw + "]", term.Cyanf
	}
}
