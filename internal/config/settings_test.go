package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.True(t, settings.AllowSound)
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, 3, settings.Sets)
	assert.Equal(t, 90, settings.Pace)
	assert.Equal(t, 5, settings.BreakMinutes)
	assert.Equal(t, time.Second, settings.TickInterval)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestApplyEnvOverrides(t *testing.T) {
	settings := DefaultSettings()
	err := ApplyEnvFrom(&settings, map[string]string{
		"WORKOUT_TIMER_ALLOW_SOUND":   "false",
		"WORKOUT_TIMER_SETS":          "5",
		"WORKOUT_TIMER_TICK_INTERVAL": "250ms",
		"WORKOUT_TIMER_LOG_LEVEL":     "debug",
		"UNRELATED":                   "1",
	})
	require.NoError(t, err)

	assert.False(t, settings.AllowSound)
	assert.Equal(t, 5, settings.Sets)
	assert.Equal(t, 250*time.Millisecond, settings.TickInterval)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 90, settings.Pace, "unset variables keep current values")
	assert.True(t, settings.SoundEnabled)
}

func TestApplyEnvInvalidValue(t *testing.T) {
	settings := DefaultSettings()
	err := ApplyEnvFrom(&settings, map[string]string{
		"WORKOUT_TIMER_SETS": "many",
	})
	assert.Error(t, err)
}

func TestValidateClamps(t *testing.T) {
	settings := Settings{Sets: 9, Pace: 100, BreakMinutes: 0}
	settings.Validate()

	assert.Equal(t, 5, settings.Sets)
	assert.Equal(t, 90, settings.Pace)
	assert.Equal(t, 1, settings.BreakMinutes)
	assert.Equal(t, time.Second, settings.TickInterval)
	assert.Equal(t, "info", settings.LogLevel)
}
