package config

import (
	"fmt"
	"time"

	"workouttimer/internal/core/model"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WORKOUT_TIMER_"

// Settings defines startup preferences. Runtime state is never written back.
type Settings struct {
	AllowSound   bool          `env:"ALLOW_SOUND"`
	SoundEnabled bool          `env:"SOUND_ENABLED"`
	Sets         int           `env:"SETS"`
	Pace         int           `env:"PACE"`
	BreakMinutes int           `env:"BREAK_MINUTES"`
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	LogLevel    string `env:"LOG_LEVEL"`
	LogFile     string `env:"LOG_FILE"`
	LogToStdout bool   `env:"LOG_TO_STDOUT"`
	LogJSON     bool   `env:"LOG_JSON"`
}

// DefaultSettings returns default settings for the workout timer.
func DefaultSettings() Settings {
	return Settings{
		AllowSound:   true,
		SoundEnabled: true,
		Sets:         model.DefaultSets,
		Pace:         model.DefaultPace,
		BreakMinutes: model.DefaultBreakMinutes,
		TickInterval: time.Second,
		LogLevel:     "info",
		LogToStdout:  true,
	}
}

// ApplyEnv overlays WORKOUT_TIMER_* environment variables onto settings.
// Unset variables keep the current values.
func ApplyEnv(settings *Settings) error {
	return ApplyEnvFrom(settings, nil)
}

// ApplyEnvFrom is ApplyEnv with an explicit environment, used by tests.
func ApplyEnvFrom(settings *Settings, environment map[string]string) error {
	options := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		options.Environment = environment
	}
	if err := env.ParseWithOptions(settings, options); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Validate clamps calculator inputs into the slider ranges and fills gaps.
func (settings *Settings) Validate() {
	settings.Sets = model.ClampSets(settings.Sets)
	settings.Pace = model.ClampPace(settings.Pace)
	settings.BreakMinutes = model.ClampBreakMinutes(settings.BreakMinutes)
	if settings.TickInterval <= 0 {
		settings.TickInterval = time.Second
	}
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
}
