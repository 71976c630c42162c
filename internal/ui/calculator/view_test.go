package calculator

import (
	"testing"

	"workouttimer/internal/core/calculator"
	"workouttimer/internal/core/catalog"
	"workouttimer/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, partition model.Partition) (*View, *calculator.Calculator) {
	t.Helper()
	test.NewTempApp(t)

	calc, err := calculator.New(catalog.Workouts(partition), calculator.Options{})
	require.NoError(t, err)
	return New(calc), calc
}

func TestViewRendersMountState(t *testing.T) {
	view, _ := newView(t, model.PartitionPM)

	assert.Equal(t, "46:00", view.Duration())
	assert.Equal(t, "Full-body workout (8 exercises)", view.workoutSelect.Selected)
	assert.Len(t, view.workoutSelect.Options, 5)
	assert.Equal(t, 3.0, view.setsSlider.Value)
	assert.Equal(t, 90.0, view.paceSlider.Value)
	assert.Equal(t, 5.0, view.breakSlider.Value)
	assert.Equal(t, "3", view.setsLabel.Text)
	assert.Equal(t, "90 sec/exercise", view.paceLabel.Text)
	assert.Equal(t, "5 minutes/break", view.breakLabel.Text)
}

func TestViewSlidersDriveCalculator(t *testing.T) {
	view, calc := newView(t, model.PartitionAM)

	view.setsSlider.OnChanged(1)
	view.paceSlider.OnChanged(30)
	view.breakSlider.OnChanged(1)

	assert.Equal(t, 4.5, calc.Duration())
	assert.Equal(t, "04:30", view.Duration())
	assert.Equal(t, "30 sec/exercise", view.paceLabel.Text)
	assert.Equal(t, "1 minutes/break", view.breakLabel.Text)
}

func TestViewSelectDrivesCalculator(t *testing.T) {
	view, calc := newView(t, model.PartitionAM)

	view.workoutSelect.SetSelected("Arms only (3 exercises)")

	assert.Equal(t, 3, calc.Snapshot().Inputs.Exercises)
	assert.Equal(t, "Arms only", calc.Snapshot().Selected)
	assert.Equal(t, "23:30", view.Duration())
}

func TestViewButtonsStepDuration(t *testing.T) {
	view, calc := newView(t, model.PartitionAM)
	view.setsSlider.OnChanged(1)
	view.paceSlider.OnChanged(30)
	view.breakSlider.OnChanged(1)

	test.Tap(view.increment)
	assert.Equal(t, "05:00", view.Duration())

	test.Tap(view.decrement)
	test.Tap(view.decrement)
	assert.Equal(t, "03:00", view.Duration())
	assert.Equal(t, 3.0, calc.Duration())
}

func TestViewFollowsCatalogChange(t *testing.T) {
	view, calc := newView(t, model.PartitionAM)

	calc.SetWorkouts(catalog.Workouts(model.PartitionPM))

	assert.Equal(t, "Full-body workout (8 exercises)", view.workoutSelect.Selected)
	assert.Equal(t, 9, calc.Snapshot().Inputs.Exercises, "catalog change does not reselect")
}
