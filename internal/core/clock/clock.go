package clock

import (
	"sync"
	"time"

	"workouttimer/internal/core/model"
)

// LabelLayout renders timestamps like "Oct 26, 03:04:05 PM".
const LabelLayout = "Jan 06, 03:04:05 PM"

// Event is a clock update for observers.
type Event struct {
	Label     string
	Partition model.Partition
	At        time.Time
}

// Config contains runtime options for Clock.
type Config struct {
	TickInterval time.Duration
	Now          func() time.Time
}

// Clock publishes the current time label on every tick.
type Clock struct {
	mu      sync.Mutex
	options Config
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a Clock with the provided configuration.
func New(options Config) *Clock {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Clock{options: options}
}

// Label formats a timestamp the way the clock publishes it.
func Label(at time.Time) string {
	return at.Format(LabelLayout)
}

// Current returns an event for the present moment without waiting for a tick.
func (clock *Clock) Current() Event {
	return newEvent(clock.options.Now())
}

// Subscribe registers a new observer channel.
func (clock *Clock) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	clock.mu.Lock()
	clock.events = append(clock.events, ch)
	clock.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (clock *Clock) Start() {
	clock.mu.Lock()
	if clock.running {
		clock.mu.Unlock()
		return
	}
	clock.running = true
	clock.stopCh = make(chan struct{})
	clock.doneCh = make(chan struct{})
	stopCh, doneCh := clock.stopCh, clock.doneCh
	clock.mu.Unlock()

	clock.emit(clock.Current())

	go clock.run(stopCh, doneCh)
}

// Stop terminates the ticking loop and closes observers.
func (clock *Clock) Stop() {
	clock.mu.Lock()
	if !clock.running {
		clock.mu.Unlock()
		return
	}
	close(clock.stopCh)
	doneCh := clock.doneCh
	clock.running = false
	clock.mu.Unlock()

	<-doneCh

	clock.mu.Lock()
	defer clock.mu.Unlock()
	for _, ch := range clock.events {
		close(ch)
	}
	clock.events = nil
}

func (clock *Clock) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(clock.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			clock.emit(clock.Current())
		}
	}
}

func (clock *Clock) emit(event Event) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for _, ch := range clock.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func newEvent(at time.Time) Event {
	return Event{
		Label:     Label(at),
		Partition: model.PartitionOf(at),
		At:        at,
	}
}
