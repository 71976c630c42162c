package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"workouttimer/internal/config"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AllowSound          *bool  `yaml:"allow_sound"`
	SoundEnabled        *bool  `yaml:"sound_enabled"`
	Sets                int    `yaml:"sets"`
	PaceSeconds         int    `yaml:"pace_seconds"`
	BreakMinutes        int    `yaml:"break_minutes"`
	TickIntervalSeconds int    `yaml:"tick_interval_seconds"`
	LogLevel            string `yaml:"log_level"`
	LogFile             string `yaml:"log_file"`
	LogToStdout         *bool  `yaml:"log_to_stdout"`
	LogJSON             bool   `yaml:"log_json"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads startup preferences for appName.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (config.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return config.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from an explicit YAML file.
func LoadSettingsFile(configPath string) (config.Settings, error) {
	settings := config.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *config.Settings, fileData yamlSettings) {
	if fileData.AllowSound != nil {
		settings.AllowSound = *fileData.AllowSound
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.Sets > 0 {
		settings.Sets = fileData.Sets
	}
	if fileData.PaceSeconds > 0 {
		settings.Pace = fileData.PaceSeconds
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.TickIntervalSeconds > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalSeconds) * time.Second
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	if fileData.LogFile != "" {
		settings.LogFile = fileData.LogFile
	}
	if fileData.LogToStdout != nil {
		settings.LogToStdout = *fileData.LogToStdout
	}
	settings.LogJSON = fileData.LogJSON
}
