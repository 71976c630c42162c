package shell

import (
	"fmt"

	"workouttimer/internal/core/calculator"
	"workouttimer/internal/core/catalog"
	"workouttimer/internal/core/clock"
	calcview "workouttimer/internal/ui/calculator"
	"workouttimer/internal/ui/sound"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

const title = "Workout timer"

// Config defines the shell's startup state.
type Config struct {
	AllowSound   bool
	Player       calculator.SoundPlayer
	Sets         int
	Pace         int
	BreakMinutes int
	Now          clock.Event
}

// Shell owns the sound flag and the time label and composes the widgets.
type Shell struct {
	window         fyne.Window
	allowSound     bool
	soundListeners []func(bool)
	provider       *catalog.Provider
	calc           *calculator.Calculator
	view           *calcview.View
	toggle         *sound.Toggle
	timeLabel      *widget.Label
}

// New builds the main window.
func New(app fyne.App, config Config) (*Shell, error) {
	provider := catalog.NewProvider(config.Now.Partition)
	calc, err := calculator.New(provider.Current(), calculator.Options{
		AllowSound:   config.AllowSound,
		Player:       config.Player,
		Sets:         config.Sets,
		Pace:         config.Pace,
		BreakMinutes: config.BreakMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("mount calculator: %w", err)
	}

	shell := &Shell{
		window:     app.NewWindow(title),
		allowSound: config.AllowSound,
		provider:   provider,
		calc:       calc,
		timeLabel:  widget.NewLabel(timeText(config.Now.Label)),
	}
	if app.Icon() != nil {
		shell.window.SetIcon(app.Icon())
	}

	shell.view = calcview.New(calc)
	shell.toggle = sound.New(config.AllowSound, shell.SetAllowSound)

	header := container.NewHBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		shell.toggle.Content(),
	)
	content := container.NewBorder(container.NewVBox(header, shell.timeLabel), nil, nil, nil, shell.view.Content())
	shell.window.SetContent(container.NewPadded(content))
	shell.window.Resize(fyne.NewSize(420, 480))

	return shell, nil
}

// Window returns the main window.
func (shell *Shell) Window() fyne.Window {
	return shell.window
}

// Calculator returns the mounted calculator.
func (shell *Shell) Calculator() *calculator.Calculator {
	return shell.calc
}

// Show displays the main window.
func (shell *Shell) Show() {
	shell.window.Show()
	shell.window.RequestFocus()
}

// AllowSound reports whether notification sounds are allowed.
func (shell *Shell) AllowSound() bool {
	return shell.allowSound
}

// OnSoundChange registers an observer for the sound flag.
func (shell *Shell) OnSoundChange(listener func(bool)) {
	if listener != nil {
		shell.soundListeners = append(shell.soundListeners, listener)
	}
}

// SetAllowSound updates the flag and pushes it to every consumer.
func (shell *Shell) SetAllowSound(allowSound bool) {
	if shell.allowSound == allowSound {
		return
	}
	shell.allowSound = allowSound
	logrus.Debugf("allow sound: %t", allowSound)

	shell.toggle.SetAllowSound(allowSound)
	shell.calc.SetAllowSound(allowSound)
	for _, listener := range shell.soundListeners {
		listener(allowSound)
	}
}

// ToggleSound flips the sound flag.
func (shell *Shell) ToggleSound() {
	shell.SetAllowSound(!shell.allowSound)
}

// HandleClock refreshes the time label and swaps the catalog when the part
// of the day changes.
func (shell *Shell) HandleClock(event clock.Event) {
	shell.timeLabel.SetText(timeText(event.Label))

	workouts, changed := shell.provider.Update(event.Partition)
	if !changed {
		return
	}
	logrus.Infof("part of day changed to %s, refreshing workouts", event.Partition)
	shell.calc.SetWorkouts(workouts)
}

// TimeText returns the rendered time label.
func (shell *Shell) TimeText() string {
	return shell.timeLabel.Text
}

func timeText(label string) string {
	return "For your workout on " + label
}
