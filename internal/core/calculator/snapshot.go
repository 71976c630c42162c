package calculator

import (
	"fmt"
	"math"

	"workouttimer/internal/core/model"
)

// Snapshot is a copy of the calculator state for rendering.
type Snapshot struct {
	Inputs     model.Inputs
	Duration   float64
	AllowSound bool
	Selected   string
	Workouts   []model.WorkoutOption
}

// Minutes returns the whole-minute part of the duration.
func (snapshot Snapshot) Minutes() int {
	return int(math.Floor(snapshot.Duration))
}

// Seconds returns the fractional minute expressed in seconds. No rounding is
// applied, so floating point noise shows through.
func (snapshot Snapshot) Seconds() float64 {
	return (snapshot.Duration - math.Floor(snapshot.Duration)) * 60
}

// Display renders the duration as mm:ss.
func (snapshot Snapshot) Display() string {
	return FormatDuration(snapshot.Duration)
}

// FormatDuration renders minutes as mm:ss. Seconds are truncated, never
// rounded up into the next minute.
func FormatDuration(duration float64) string {
	if duration < 0 {
		duration = 0
	}
	minutes := math.Floor(duration)
	seconds := int((duration - minutes) * 60)
	return fmt.Sprintf("%02d:%02d", int(minutes), seconds)
}
