// Package logrus provides a logrus backed logger.Logger
package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

// Adapter exposes a logrus entry through logger.Logger
type Adapter struct {
	*logrus.Entry
}

// New creates a logrus logger writing to out
func New(cfg logger.Config, out io.Writer) (*Adapter, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	if cfg.JSON {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: cfg.TimeLayout})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: cfg.TimeLayout,
			ForceColors:     cfg.Colored,
			DisableColors:   !cfg.Colored,
		})
	}

	return &Adapter{logrus.NewEntry(log)}, nil
}

func (l *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{l.Entry.WithField(key, value)}
}

func (l *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{l.Entry.WithFields(fields)}
}

func (l *Adapter) WithError(err error) logger.Logger {
	return &Adapter{l.Entry.WithError(err)}
}

func (l *Adapter) SetLevel(level logger.Level) {
	l.Entry.Logger.SetLevel(toLogrusLevel(level))
}

func (l *Adapter) GetLevel() logger.Level {
	switch l.Entry.Logger.GetLevel() {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.ErrorLevel:
		return logger.ErrorLevel
	default:
		return logger.FatalLevel
	}
}

func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.TraceLevel:
		return logrus.TraceLevel
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.ErrorLevel:
		return logrus.ErrorLevel
	default:
		// logrus has no disabled level; fatal is the quietest
		return logrus.FatalLevel
	}
}
