package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const pollInterval = 5 * time.Millisecond

// OtoBackend plays PCM through the system audio device. The device is opened
// on first use; oto allows a single context per process.
type OtoBackend struct {
	once    sync.Once
	context *oto.Context
	initErr error
}

// NewOtoBackend returns a lazily initialized oto backend.
func NewOtoBackend() *OtoBackend {
	return &OtoBackend{}
}

// Play renders pcm and waits until the device has consumed it.
func (backend *OtoBackend) Play(pcm []byte) error {
	context, err := backend.open()
	if err != nil {
		return err
	}

	player := context.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(pollInterval)
	}
	if err := player.Err(); err != nil {
		_ = player.Close()
		return fmt.Errorf("oto playback: %w", err)
	}
	return player.Close()
}

func (backend *OtoBackend) open() (*oto.Context, error) {
	backend.once.Do(func() {
		options := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: Channels,
			Format:       oto.FormatSignedInt16LE,
		}
		context, ready, err := oto.NewContext(options)
		if err != nil {
			backend.initErr = fmt.Errorf("open audio device: %w", err)
			return
		}
		<-ready
		backend.context = context
	})
	return backend.context, backend.initErr
}
