package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Output format shared by clip synthesis and the oto backend.
const (
	SampleRate    = 44100
	Channels      = 2
	BitDepth      = 16
	BytesPerFrame = Channels * (BitDepth / 8)
)

// ClipConfig describes a single enveloped tone.
type ClipConfig struct {
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Volume    float64
}

// DefaultClick is the notification clip played when the duration changes.
func DefaultClick() ClipConfig {
	return ClipConfig{
		Frequency: 1320,
		Duration:  90 * time.Millisecond,
		Attack:    3 * time.Millisecond,
		Release:   70 * time.Millisecond,
		Volume:    0.35,
	}
}

// Frames returns the number of frames the clip spans.
func (config ClipConfig) Frames() int {
	return int(config.Duration.Seconds() * SampleRate)
}

// Synthesize renders the clip as interleaved signed 16-bit little-endian PCM.
func Synthesize(config ClipConfig) []byte {
	frames := config.Frames()
	if frames <= 0 {
		return nil
	}
	volume := math.Max(0, math.Min(config.Volume, 1))
	attackFrames := int(config.Attack.Seconds() * SampleRate)
	releaseFrames := int(config.Release.Seconds() * SampleRate)

	pcm := make([]byte, frames*BytesPerFrame)
	for frame := 0; frame < frames; frame++ {
		envelope := 1.0
		if attackFrames > 0 && frame < attackFrames {
			envelope = float64(frame) / float64(attackFrames)
		}
		if remaining := frames - frame; releaseFrames > 0 && remaining < releaseFrames {
			envelope = math.Min(envelope, float64(remaining)/float64(releaseFrames))
		}

		phase := 2 * math.Pi * config.Frequency * float64(frame) / SampleRate
		sample := int16(math.Sin(phase) * envelope * volume * math.MaxInt16)

		offset := frame * BytesPerFrame
		for channel := 0; channel < Channels; channel++ {
			binary.LittleEndian.PutUint16(pcm[offset+channel*2:], uint16(sample))
		}
	}
	return pcm
}
