package eggprice

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yorrLorenz/eggprice/pkg/logger"
	"github.com/yorrLorenz/eggprice/pkg/logger/logrus"
	"github.com/yorrLorenz/eggprice/pkg/logger/zerolog"
)

const (
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "EGGPRICE_LOG_LEVEL"
	envLogTimeFormat = "EGGPRICE_LOG_TIME_FORMAT"
	envLogColor      = "EGGPRICE_LOG_COLOR"
	envLogJSON       = "EGGPRICE_LOG_JSON"
)

// DefaultLog is the logger used when no other is configured
var DefaultLog logger.Logger

func init() {
	cfg, err := loggerConfigFromEnv()
	if err != nil {
		panic(err)
	}

	DefaultLog, err = NewLogger(cfg, os.Stderr)
	if err != nil {
		panic(err)
	}
}

// NewLogger creates a logger of the configured backend writing to out
func NewLogger(cfg logger.Config, out io.Writer) (logger.Logger, error) {
	switch cfg.Backend {
	case "zerolog", "":
		log, err := zerolog.New(cfg, out)
		if err != nil {
			return nil, err
		}
		return zerolog.NewAdapter(log), nil
	case "logrus":
		log, err := logrus.New(cfg, out)
		if err != nil {
			return nil, err
		}
		return log, nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

// loggerConfigFromEnv reads the default logger configuration from environment variables
func loggerConfigFromEnv() (logger.Config, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return logger.Config{}, err
	}

	json, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return logger.Config{}, err
	}

	return logger.Config{
		Backend:    "zerolog",
		Level:      getEnvWithDefault(envLogLevel, defaultLogLevel),
		TimeLayout: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:    colored,
		JSON:       json,
	}, nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
