package main

import (
	"errors"

	"workouttimer/internal/audio"
	"workouttimer/internal/config"
	"workouttimer/internal/core/calculator"
	"workouttimer/internal/core/clock"
	"workouttimer/internal/logging"
	"workouttimer/internal/platform"
	"workouttimer/internal/storage"
	"workouttimer/internal/ui/shell"
	"workouttimer/internal/ui/tray"
	"workouttimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
)

const appName = "WorkoutTimer"

func main() {
	settings := loadSettings()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   settings.LogFile,
		LogToStdout:   settings.LogToStdout,
		LogLevel:      settings.LogLevel,
		LogFormatJSON: settings.LogJSON,
	})

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logrus.Infof("single instance: %s", err)
			return
		}
		logrus.Errorf("single instance: %s", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.workouttimer.app")
	activeIcon := resources.MustLogo(resources.LogoActive)
	mutedIcon := resources.MustLogo(resources.LogoMuted)
	fyneApp.SetIcon(activeIcon)

	player, wait := newSoundPlayer(settings)
	defer wait()

	ticker := clock.New(clock.Config{TickInterval: settings.TickInterval})
	mainShell, err := shell.New(fyneApp, shell.Config{
		AllowSound:   settings.AllowSound,
		Player:       player,
		Sets:         settings.Sets,
		Pace:         settings.Pace,
		BreakMinutes: settings.BreakMinutes,
		Now:          ticker.Current(),
	})
	if err != nil {
		logrus.Errorf("build window: %s", err)
		return
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, settings.AllowSound, tray.Callbacks{
			OnShow:        mainShell.Show,
			OnToggleSound: mainShell.ToggleSound,
			OnQuit:        fyneApp.Quit,
		})
		trayIcon := func(allowSound bool) fyne.Resource {
			if allowSound {
				return activeIcon
			}
			return mutedIcon
		}
		desktopApp.SetSystemTrayIcon(trayIcon(settings.AllowSound))
		mainShell.OnSoundChange(func(allowSound bool) {
			trayManager.SetAllowSound(allowSound)
			desktopApp.SetSystemTrayIcon(trayIcon(allowSound))
		})
		mainShell.Calculator().OnChange(func(snapshot calculator.Snapshot) {
			trayManager.SetStatus(snapshot.Display())
		})
		trayManager.SetStatus(mainShell.Calculator().Snapshot().Display())
	} else {
		logrus.Info("system tray unsupported on this platform")
	}

	events := ticker.Subscribe(5)
	go func() {
		for event := range events {
			fyne.Do(func() {
				mainShell.HandleClock(event)
			})
		}
	}()
	ticker.Start()
	defer ticker.Stop()

	mainShell.Window().SetMaster()
	mainShell.Show()
	logrus.Infof("%s started", appName)
	fyneApp.Run()
}

func loadSettings() config.Settings {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logrus.Warnf("load settings, using defaults: %s", err)
		settings = config.DefaultSettings()
	}
	if err := config.ApplyEnv(&settings); err != nil {
		logrus.Warnf("apply environment overrides: %s", err)
	}
	settings.Validate()
	return settings
}

func newSoundPlayer(settings config.Settings) (calculator.SoundPlayer, func()) {
	if !settings.SoundEnabled {
		logrus.Info("sound backend disabled")
		return audio.NopPlayer{}, func() {}
	}
	player := audio.NewPlayer(audio.NewOtoBackend(), audio.Synthesize(audio.DefaultClick()))
	return player, player.Wait
}
