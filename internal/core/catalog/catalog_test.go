package catalog

import (
	"testing"

	"workouttimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutsByPartition(t *testing.T) {
	am := Workouts(model.PartitionAM)
	pm := Workouts(model.PartitionPM)

	require.Len(t, am, 5)
	require.Len(t, pm, 5)

	assert.Equal(t, []model.WorkoutOption{
		{Name: "Full-body workout", Exercises: 9},
		{Name: "Arms + Legs", Exercises: 6},
		{Name: "Arms only", Exercises: 3},
		{Name: "Legs only", Exercises: 4},
		{Name: "Core only", Exercises: 5},
	}, am)

	assert.Equal(t, 8, pm[0].Exercises)
	assert.Equal(t, 6, pm[1].Exercises)
	assert.Equal(t, 3, pm[2].Exercises)
	assert.Equal(t, 4, pm[3].Exercises)
	assert.Equal(t, 4, pm[4].Exercises)
	assert.Equal(t, Names(am), Names(pm))
}

func TestProviderRebuildsOnlyOnPartitionChange(t *testing.T) {
	provider := NewProvider(model.PartitionAM)
	assert.Equal(t, model.PartitionAM, provider.Partition())

	workouts, changed := provider.Update(model.PartitionAM)
	assert.False(t, changed)
	assert.Equal(t, 9, workouts[0].Exercises)

	workouts, changed = provider.Update(model.PartitionPM)
	assert.True(t, changed)
	assert.Equal(t, 8, workouts[0].Exercises)
	assert.Equal(t, model.PartitionPM, provider.Partition())

	_, changed = provider.Update(model.PartitionPM)
	assert.False(t, changed)
}

func TestProviderReturnsCopies(t *testing.T) {
	provider := NewProvider(model.PartitionPM)
	workouts := provider.Current()
	workouts[0].Exercises = 100

	assert.Equal(t, 8, provider.Current()[0].Exercises)
}

func TestFind(t *testing.T) {
	workouts := Workouts(model.PartitionPM)

	workout, ok := Find(workouts, "Core only")
	require.True(t, ok)
	assert.Equal(t, 4, workout.Exercises)

	_, ok = Find(workouts, "Cardio")
	assert.False(t, ok)
}
