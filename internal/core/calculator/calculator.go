package calculator

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"workouttimer/internal/core/catalog"
	"workouttimer/internal/core/model"
)

var (
	// ErrNoWorkouts indicates the calculator was mounted with an empty catalog.
	ErrNoWorkouts = errors.New("workout catalog is empty")
	// ErrUnknownWorkout indicates a selection that is not in the catalog.
	ErrUnknownWorkout = errors.New("unknown workout")
)

// SoundPlayer plays the notification clip without waiting for it to finish.
type SoundPlayer interface {
	Play()
}

// Options configures a new Calculator. Zero input values fall back to defaults.
type Options struct {
	AllowSound   bool
	Player       SoundPlayer
	Sets         int
	Pace         int
	BreakMinutes int
}

type state struct {
	inputs     model.Inputs
	duration   float64
	allowSound bool
	selected   string
	workouts   []model.WorkoutOption
}

// Calculator owns the workout inputs and the duration derived from them.
// The duration can also be stepped by whole minutes; the next input change
// overwrites any manual step. Setting an input to its current value is a
// no-op and keeps a manual step in place.
type Calculator struct {
	mu        sync.Mutex
	state     state
	player    SoundPlayer
	listeners []func(Snapshot)
}

// New mounts a calculator for the given catalog.
func New(workouts []model.WorkoutOption, options Options) (*Calculator, error) {
	if len(workouts) == 0 {
		return nil, ErrNoWorkouts
	}

	inputs := model.DefaultInputs(workouts[0].Exercises)
	if options.Sets > 0 {
		inputs.Sets = options.Sets
	}
	if options.Pace > 0 {
		inputs.Pace = options.Pace
	}
	if options.BreakMinutes > 0 {
		inputs.BreakMinutes = options.BreakMinutes
	}

	calc := &Calculator{
		state: state{
			inputs:     inputs,
			allowSound: options.AllowSound,
			selected:   workouts[0].Name,
			workouts:   append([]model.WorkoutOption(nil), workouts...),
		},
		player: options.Player,
	}

	// Mount: derive the first duration and run the sound hook once.
	calc.state.duration = calc.state.inputs.Duration()
	if calc.state.allowSound {
		calc.play()
	}
	return calc, nil
}

// OnChange registers an observer called after every state change.
func (calc *Calculator) OnChange(listener func(Snapshot)) {
	if listener == nil {
		return
	}
	calc.mu.Lock()
	calc.listeners = append(calc.listeners, listener)
	calc.mu.Unlock()
}

// Snapshot returns the current state.
func (calc *Calculator) Snapshot() Snapshot {
	calc.mu.Lock()
	defer calc.mu.Unlock()
	return calc.snapshotLocked()
}

// Duration returns the current duration in minutes.
func (calc *Calculator) Duration() float64 {
	calc.mu.Lock()
	defer calc.mu.Unlock()
	return calc.state.duration
}

// SetExercises sets the exercise count and recomputes the duration.
func (calc *Calculator) SetExercises(exercises int) {
	calc.mutate(func(current *state) {
		if current.inputs.Exercises == exercises {
			return
		}
		current.inputs.Exercises = exercises
		if workout, ok := current.selectedWorkout(); !ok || workout.Exercises != exercises {
			current.selected = firstWithExercises(current.workouts, exercises)
		}
		current.recompute()
	})
}

// SelectWorkout sets the exercise count to the named workout's count.
func (calc *Calculator) SelectWorkout(name string) error {
	var err error
	calc.mutate(func(current *state) {
		workout, ok := catalog.Find(current.workouts, name)
		if !ok {
			err = fmt.Errorf("select %q: %w", name, ErrUnknownWorkout)
			return
		}
		current.selected = workout.Name
		if current.inputs.Exercises == workout.Exercises {
			return
		}
		current.inputs.Exercises = workout.Exercises
		current.recompute()
	})
	return err
}

// SetWorkouts replaces the catalog shown by the selector. The exercise count
// is left alone; it is only taken from the catalog at mount or on selection.
func (calc *Calculator) SetWorkouts(workouts []model.WorkoutOption) {
	calc.mutate(func(current *state) {
		current.workouts = append([]model.WorkoutOption(nil), workouts...)
		if _, ok := current.selectedWorkout(); !ok {
			current.selected = firstWithExercises(current.workouts, current.inputs.Exercises)
		}
	})
}

// SetSets sets the number of sets and recomputes the duration.
func (calc *Calculator) SetSets(sets int) {
	calc.mutate(func(current *state) {
		if current.inputs.Sets == sets {
			return
		}
		current.inputs.Sets = sets
		current.recompute()
	})
}

// SetPace sets seconds per exercise and recomputes the duration.
func (calc *Calculator) SetPace(pace int) {
	calc.mutate(func(current *state) {
		if current.inputs.Pace == pace {
			return
		}
		current.inputs.Pace = pace
		current.recompute()
	})
}

// SetBreakMinutes sets the break length and recomputes the duration.
func (calc *Calculator) SetBreakMinutes(minutes int) {
	calc.mutate(func(current *state) {
		if current.inputs.BreakMinutes == minutes {
			return
		}
		current.inputs.BreakMinutes = minutes
		current.recompute()
	})
}

// SetAllowSound updates the sound flag. Switching it on replays the clip.
func (calc *Calculator) SetAllowSound(allow bool) {
	calc.mutate(func(current *state) {
		current.allowSound = allow
	})
}

// Increment moves the duration to the next whole minute above its floor.
func (calc *Calculator) Increment() {
	calc.mutate(func(current *state) {
		current.duration = math.Floor(current.duration) + 1
	})
}

// Decrement moves the duration one whole minute down, never below zero.
func (calc *Calculator) Decrement() {
	calc.mutate(func(current *state) {
		if current.duration > 1 {
			current.duration = math.Ceil(current.duration) - 1
			return
		}
		current.duration = 0
	})
}

func (calc *Calculator) mutate(apply func(*state)) {
	calc.mu.Lock()
	before := calc.state
	apply(&calc.state)
	after := calc.state

	durationChanged := after.duration != before.duration
	soundChanged := after.allowSound != before.allowSound
	changed := durationChanged || soundChanged ||
		after.inputs != before.inputs ||
		after.selected != before.selected ||
		!sameWorkouts(before.workouts, after.workouts)

	var snapshot Snapshot
	var listeners []func(Snapshot)
	if changed {
		snapshot = calc.snapshotLocked()
		listeners = append(listeners, calc.listeners...)
	}
	calc.mu.Unlock()

	if (durationChanged || soundChanged) && after.allowSound {
		calc.play()
	}
	for _, listener := range listeners {
		listener(snapshot)
	}
}

func (calc *Calculator) play() {
	if calc.player != nil {
		calc.player.Play()
	}
}

func (calc *Calculator) snapshotLocked() Snapshot {
	return Snapshot{
		Inputs:     calc.state.inputs,
		Duration:   calc.state.duration,
		AllowSound: calc.state.allowSound,
		Selected:   calc.state.selected,
		Workouts:   append([]model.WorkoutOption(nil), calc.state.workouts...),
	}
}

func (current *state) recompute() {
	current.duration = current.inputs.Duration()
}

func (current *state) selectedWorkout() (model.WorkoutOption, bool) {
	return catalog.Find(current.workouts, current.selected)
}

func firstWithExercises(workouts []model.WorkoutOption, exercises int) string {
	for _, workout := range workouts {
		if workout.Exercises == exercises {
			return workout.Name
		}
	}
	return ""
}

func sameWorkouts(left, right []model.WorkoutOption) bool {
	if len(left) != len(right) {
		return false
	}
	for index := range left {
		if left[index] != right[index] {
			return false
		}
	}
	return true
}
