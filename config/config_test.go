package config_test

import (
	"testing"

	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("uses defaults when nothing is set", func(t *testing.T) {
		for _, k := range []string{"RMX_ROOT", "RMX_SCALE", "RMX_VELOCITY", "RMX_ALTSCREEN", "RMX_DEBUG"} {
			t.Setenv(k, "")
		}
		require.Equal(t, &config.Config{
			Root:      "C4",
			Scale:     "major",
			Velocity:  100,
			AltScreen: true,
		}, config.FromEnv())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("RMX_ROOT", "D♭3")
		t.Setenv("RMX_SCALE", "dorian")
		t.Setenv("RMX_VELOCITY", "64")
		t.Setenv("RMX_ALTSCREEN", "false")
		t.Setenv("RMX_DEBUG", "debug.log")

		got := config.FromEnv()
		require.Equal(t, "D♭3", got.Root)
		require.Equal(t, "dorian", got.Scale)
		require.Equal(t, 64, got.Velocity)
		require.False(t, got.AltScreen)
		require.Equal(t, "debug.log", got.DebugLog)
	})

	t.Run("ignores a malformed velocity", func(t *testing.T) {
		t.Setenv("RMX_VELOCITY", "loud")
		require.Equal(t, 100, config.FromEnv().Velocity)
	})
}
