package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for level, name := range levelNames {
		parsed, err := ParseLevel(name)
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}

	level, err := ParseLevel("INFO")
	require.NoError(t, err)
	require.Equal(t, InfoLevel, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}
