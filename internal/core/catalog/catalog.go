package catalog

import (
	"sync"

	"workouttimer/internal/core/model"
)

// Workouts returns the workout list for the given part of the day.
func Workouts(partition model.Partition) []model.WorkoutOption {
	morning := partition == model.PartitionAM
	return []model.WorkoutOption{
		{Name: "Full-body workout", Exercises: pick(morning, 9, 8)},
		{Name: "Arms + Legs", Exercises: 6},
		{Name: "Arms only", Exercises: 3},
		{Name: "Legs only", Exercises: 4},
		{Name: "Core only", Exercises: pick(morning, 5, 4)},
	}
}

func pick(morning bool, am, pm int) int {
	if morning {
		return am
	}
	return pm
}

// Provider caches the catalog and rebuilds it only when the partition changes.
type Provider struct {
	mu        sync.Mutex
	partition model.Partition
	workouts  []model.WorkoutOption
}

// NewProvider creates a provider primed for the given partition.
func NewProvider(partition model.Partition) *Provider {
	return &Provider{
		partition: partition,
		workouts:  Workouts(partition),
	}
}

// Current returns a copy of the cached catalog.
func (provider *Provider) Current() []model.WorkoutOption {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	return append([]model.WorkoutOption(nil), provider.workouts...)
}

// Partition returns the partition the cache was built for.
func (provider *Provider) Partition() model.Partition {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	return provider.partition
}

// Update returns the catalog for partition and reports whether it was rebuilt.
func (provider *Provider) Update(partition model.Partition) ([]model.WorkoutOption, bool) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	if partition == provider.partition && provider.workouts != nil {
		return append([]model.WorkoutOption(nil), provider.workouts...), false
	}
	provider.partition = partition
	provider.workouts = Workouts(partition)
	return append([]model.WorkoutOption(nil), provider.workouts...), true
}

// Find looks up a workout by name.
func Find(workouts []model.WorkoutOption, name string) (model.WorkoutOption, bool) {
	for _, workout := range workouts {
		if workout.Name == name {
			return workout, true
		}
	}
	return model.WorkoutOption{}, false
}

// Names returns workout names in catalog order.
func Names(workouts []model.WorkoutOption) []string {
	names := make([]string, 0, len(workouts))
	for _, workout := range workouts {
		names = append(names, workout.Name)
	}
	return names
}
