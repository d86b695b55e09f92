package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(logger.Config{Level: "info", JSON: true}, buf)
	require.NoError(t, err)

	NewAdapter(log).WithField("week", 3.286).WithError(errors.New("boom")).Info("estimated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "estimated", line["message"])
	require.Equal(t, "info", line["level"])
	require.Equal(t, 3.286, line["week"])
	require.Equal(t, "boom", line["error"])
}

func TestNew_Console(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(logger.Config{Level: "debug", TimeLayout: "15:04:05"}, buf)
	require.NoError(t, err)

	NewAdapter(log).Debugf("points %d", 4)
	require.Contains(t, buf.String(), "[DBG]")
	require.Contains(t, buf.String(), "> points 4")
}

func TestAdapter_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(logger.Config{Level: "info", JSON: true}, buf)
	require.NoError(t, err)

	adapter := NewAdapter(log)
	require.Equal(t, logger.InfoLevel, adapter.GetLevel())

	adapter.Debug("hidden")
	require.Empty(t, buf.String())

	adapter.SetLevel(logger.DebugLevel)
	require.Equal(t, logger.DebugLevel, adapter.GetLevel())
	adapter.Debug("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(logger.Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}
