package audio

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Backend renders PCM to an output device and blocks until playback ends.
type Backend interface {
	Play(pcm []byte) error
}

// Player plays a fixed clip in the background. Play never blocks and never
// reports failures; overlapping plays are allowed.
type Player struct {
	backend Backend
	clip    []byte
	wg      sync.WaitGroup
}

// NewPlayer creates a player for the given backend and clip.
func NewPlayer(backend Backend, clip []byte) *Player {
	return &Player{
		backend: backend,
		clip:    clip,
	}
}

// Play starts the clip and returns immediately.
func (player *Player) Play() {
	if player == nil || player.backend == nil || len(player.clip) == 0 {
		return
	}
	player.wg.Add(1)
	go func() {
		defer player.wg.Done()
		if err := player.backend.Play(player.clip); err != nil {
			logrus.Warnf("play notification sound: %s", err)
		}
	}()
}

// Wait blocks until every started clip has finished.
func (player *Player) Wait() {
	if player == nil {
		return
	}
	player.wg.Wait()
}

// NopPlayer discards play requests.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play() {}
