package model

import "time"

// Partition is the half of the day a timestamp falls into.
type Partition string

const (
	PartitionAM Partition = "AM"
	PartitionPM Partition = "PM"
)

// PartitionOf returns the AM/PM partition for the given time.
func PartitionOf(at time.Time) Partition {
	if at.Hour() < 12 {
		return PartitionAM
	}
	return PartitionPM
}

// WorkoutOption is a named workout offered by the selector.
type WorkoutOption struct {
	Name      string
	Exercises int
}

// Control ranges for the calculator sliders.
const (
	MinSets = 1
	MaxSets = 5

	MinPace  = 30
	MaxPace  = 180
	PaceStep = 30

	MinBreakMinutes = 1
	MaxBreakMinutes = 10
)

// Defaults applied when the calculator is mounted.
const (
	DefaultSets         = 3
	DefaultPace         = 90
	DefaultBreakMinutes = 5
)

// Inputs holds the values the duration is derived from.
type Inputs struct {
	Exercises    int
	Sets         int
	Pace         int // seconds per exercise
	BreakMinutes int
}

// DefaultInputs returns mount-time inputs for the given exercise count.
func DefaultInputs(exercises int) Inputs {
	return Inputs{
		Exercises:    exercises,
		Sets:         DefaultSets,
		Pace:         DefaultPace,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Duration returns the workout length in minutes.
func (inputs Inputs) Duration() float64 {
	work := float64(inputs.Exercises*inputs.Sets*inputs.Pace) / 60
	breaks := float64((inputs.Sets - 1) * inputs.BreakMinutes)
	return work + breaks
}

// ClampSets limits a sets value to the slider range.
func ClampSets(sets int) int {
	return clamp(sets, MinSets, MaxSets)
}

// ClampPace limits a pace value to the slider range and snaps it to the step.
func ClampPace(pace int) int {
	pace = clamp(pace, MinPace, MaxPace)
	return MinPace + (pace-MinPace)/PaceStep*PaceStep
}

// ClampBreakMinutes limits a break length to the slider range.
func ClampBreakMinutes(minutes int) int {
	return clamp(minutes, MinBreakMinutes, MaxBreakMinutes)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
