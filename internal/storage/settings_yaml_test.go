package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"workouttimer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFileMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `
allow_sound: false
sets: 4
pace_seconds: 120
break_minutes: 2
tick_interval_seconds: 2
log_level: debug
log_file: /tmp/workout-timer.log
log_to_stdout: false
log_json: true
`)

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.False(t, settings.AllowSound)
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, 4, settings.Sets)
	assert.Equal(t, 120, settings.Pace)
	assert.Equal(t, 2, settings.BreakMinutes)
	assert.Equal(t, 2*time.Second, settings.TickInterval)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "/tmp/workout-timer.log", settings.LogFile)
	assert.False(t, settings.LogToStdout)
	assert.True(t, settings.LogJSON)
}

func TestLoadSettingsFilePartial(t *testing.T) {
	path := writeSettings(t, "sets: 2\n")

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	expected := config.DefaultSettings()
	expected.Sets = 2
	assert.Equal(t, expected, settings)
}

func TestLoadSettingsFileInvalid(t *testing.T) {
	path := writeSettings(t, "sets: [1, 2\n")

	settings, err := LoadSettingsFile(path)
	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	path, err := SettingsPath("WorkoutTimer")
	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", filepath.Base(path))
	assert.Equal(t, "WorkoutTimer", filepath.Base(filepath.Dir(path)))
}
