package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

// Adapter exposes a zerolog.Logger through logger.Logger
type Adapter struct {
	*zerolog.Logger
}

func NewAdapter(log *zerolog.Logger) *Adapter {
	return &Adapter{log}
}

// GetLevel implements logger.Logger.
func (z *Adapter) GetLevel() logger.Level {
	return toLevel(z.Logger.GetLevel())
}

// SetLevel implements logger.Logger.
func (z *Adapter) SetLevel(level logger.Level) {
	l := z.Logger.Level(toZerologLevel(level))
	z.Logger = &l
}

// Debug implements logger.Logger.
func (z *Adapter) Debug(args ...any) {
	z.Logger.Debug().Msg(fmt.Sprint(args...))
}

// Info implements logger.Logger.
func (z *Adapter) Info(args ...any) {
	z.Logger.Info().Msg(fmt.Sprint(args...))
}

// Warn implements logger.Logger.
func (z *Adapter) Warn(args ...any) {
	z.Logger.Warn().Msg(fmt.Sprint(args...))
}

// Error implements logger.Logger.
func (z *Adapter) Error(args ...any) {
	z.Logger.Error().Msg(fmt.Sprint(args...))
}

// Fatal implements logger.Logger.
func (z *Adapter) Fatal(args ...any) {
	z.Logger.Fatal().Msg(fmt.Sprint(args...))
}

func (z *Adapter) Debugf(format string, args ...any) {
	z.Logger.Debug().Msgf(format, args...)
}

func (z *Adapter) Infof(format string, args ...any) {
	z.Logger.Info().Msgf(format, args...)
}

func (z *Adapter) Warnf(format string, args ...any) {
	z.Logger.Warn().Msgf(format, args...)
}

func (z *Adapter) Errorf(format string, args ...any) {
	z.Logger.Error().Msgf(format, args...)
}

func (z *Adapter) Fatalf(format string, args ...any) {
	z.Logger.Fatal().Msgf(format, args...)
}

// WithError implements logger.Logger.
func (z *Adapter) WithError(err error) logger.Logger {
	l := z.Logger.With().Err(err).Logger()
	return &Adapter{&l}
}

// WithField implements logger.Logger.
func (z *Adapter) WithField(key string, value any) logger.Logger {
	l := z.Logger.With().Interface(key, value).Logger()
	return &Adapter{&l}
}

// WithFields implements logger.Logger.
func (z *Adapter) WithFields(fields map[string]any) logger.Logger {
	l := z.Logger.With().Fields(fields).Logger()
	return &Adapter{&l}
}

func toLevel(level zerolog.Level) logger.Level {
	switch level {
	case zerolog.TraceLevel:
		return logger.TraceLevel
	case zerolog.DebugLevel:
		return logger.DebugLevel
	case zerolog.InfoLevel:
		return logger.InfoLevel
	case zerolog.WarnLevel:
		return logger.WarnLevel
	case zerolog.ErrorLevel:
		return logger.ErrorLevel
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return logger.FatalLevel
	default:
		return logger.Disabled
	}
}

func toZerologLevel(level logger.Level) zerolog.Level {
	switch level {
	case logger.TraceLevel:
		return zerolog.TraceLevel
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.WarnLevel:
		return zerolog.WarnLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	case logger.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}
