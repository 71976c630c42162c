package calculator

import (
	"fmt"
	"image/color"

	"workouttimer/internal/core/calculator"
	"workouttimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// View binds the calculator controls to a Calculator.
type View struct {
	calc          *calculator.Calculator
	content       fyne.CanvasObject
	workoutSelect *widget.Select
	setsSlider    *widget.Slider
	paceSlider    *widget.Slider
	breakSlider   *widget.Slider
	setsLabel     *widget.Label
	paceLabel     *widget.Label
	breakLabel    *widget.Label
	durationLabel *canvas.Text
	decrement     *widget.Button
	increment     *widget.Button
	optionNames   map[string]string
	syncing       bool
}

// New creates a calculator view and renders the current state.
func New(calc *calculator.Calculator) *View {
	view := &View{
		calc:        calc,
		optionNames: map[string]string{},
	}

	view.workoutSelect = widget.NewSelect(nil, view.handleWorkoutChange)

	view.setsSlider = widget.NewSlider(model.MinSets, model.MaxSets)
	view.setsSlider.Step = 1
	view.setsSlider.OnChanged = view.handleSetsChange

	view.paceSlider = widget.NewSlider(model.MinPace, model.MaxPace)
	view.paceSlider.Step = model.PaceStep
	view.paceSlider.OnChanged = view.handlePaceChange

	view.breakSlider = widget.NewSlider(model.MinBreakMinutes, model.MaxBreakMinutes)
	view.breakSlider.Step = 1
	view.breakSlider.OnChanged = view.handleBreakChange

	view.setsLabel = widget.NewLabel("")
	view.paceLabel = widget.NewLabel("")
	view.breakLabel = widget.NewLabel("")

	view.durationLabel = canvas.NewText("00:00", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	view.durationLabel.Alignment = fyne.TextAlignCenter
	view.durationLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.durationLabel.TextSize = 42

	view.decrement = widget.NewButton("-", calc.Decrement)
	view.increment = widget.NewButton("+", calc.Increment)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Type of workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		view.workoutSelect,
		widget.NewLabelWithStyle("How many sets?", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, view.setsLabel, view.setsSlider),
		widget.NewLabelWithStyle("How fast are you?", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, view.paceLabel, view.paceSlider),
		widget.NewLabelWithStyle("Break length", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, view.breakLabel, view.breakSlider),
	)
	timer := container.NewHBox(layout.NewSpacer(), view.decrement, view.durationLabel, view.increment, layout.NewSpacer())
	view.content = container.NewVBox(form, widget.NewSeparator(), timer)

	calc.OnChange(view.Render)
	view.Render(calc.Snapshot())
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Duration returns the rendered mm:ss text.
func (view *View) Duration() string {
	return view.durationLabel.Text
}

// Render updates every control from snapshot without feeding values back.
func (view *View) Render(snapshot calculator.Snapshot) {
	view.syncing = true
	defer func() { view.syncing = false }()

	view.renderWorkouts(snapshot)

	view.setsSlider.SetValue(float64(snapshot.Inputs.Sets))
	view.paceSlider.SetValue(float64(snapshot.Inputs.Pace))
	view.breakSlider.SetValue(float64(snapshot.Inputs.BreakMinutes))

	view.setsLabel.SetText(fmt.Sprintf("%d", snapshot.Inputs.Sets))
	view.paceLabel.SetText(fmt.Sprintf("%d sec/exercise", snapshot.Inputs.Pace))
	view.breakLabel.SetText(fmt.Sprintf("%d minutes/break", snapshot.Inputs.BreakMinutes))

	view.durationLabel.Text = snapshot.Display()
	view.durationLabel.Refresh()
}

func (view *View) renderWorkouts(snapshot calculator.Snapshot) {
	options := make([]string, 0, len(snapshot.Workouts))
	names := make(map[string]string, len(snapshot.Workouts))
	selected := ""
	for _, workout := range snapshot.Workouts {
		label := optionLabel(workout)
		options = append(options, label)
		names[label] = workout.Name
		if workout.Name == snapshot.Selected {
			selected = label
		}
	}
	view.optionNames = names
	view.workoutSelect.SetOptions(options)
	if selected == "" {
		view.workoutSelect.ClearSelected()
		return
	}
	view.workoutSelect.SetSelected(selected)
}

func (view *View) handleWorkoutChange(label string) {
	if view.syncing {
		return
	}
	name, ok := view.optionNames[label]
	if !ok {
		return
	}
	if err := view.calc.SelectWorkout(name); err != nil {
		logrus.Warnf("select workout: %s", err)
	}
}

func (view *View) handleSetsChange(value float64) {
	if view.syncing {
		return
	}
	view.calc.SetSets(int(value))
}

func (view *View) handlePaceChange(value float64) {
	if view.syncing {
		return
	}
	view.calc.SetPace(int(value))
}

func (view *View) handleBreakChange(value float64) {
	if view.syncing {
		return
	}
	view.calc.SetBreakMinutes(int(value))
}

func optionLabel(workout model.WorkoutOption) string {
	return fmt.Sprintf("%s (%d exercises)", workout.Name, workout.Exercises)
}
