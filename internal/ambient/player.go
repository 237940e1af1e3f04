package ambient

import (
	"errors"
	"sync"
	"time"

	"github.com/focusloop/focusloop/internal/noise"
)

// ErrStopTimeout is returned by Stop when the background loop fails to
// acknowledge the stop signal within the bound. The player is still
// considered stopped - the loop cannot submit further audio once the signal
// is set and StopAll has run - so callers may treat this as diagnostic only.
var ErrStopTimeout = errors.New("playback loop did not stop within timeout")

// State is the player's position in its lifecycle. Transitions are
// Idle → Starting → Looping → Stopping → Idle; Idle is re-entrant.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateLooping
	StateStopping
)

// Default loop timings. Overridable through options, mainly for tests.
const (
	defaultPollInterval = 100 * time.Millisecond
	defaultRetryBackoff = 500 * time.Millisecond
	defaultStopTimeout  = 2 * time.Second
)

// Option configures a Player.
type Option func(*Player)

// WithBlockDuration sets how much audio each loop iteration generates.
func WithBlockDuration(d time.Duration) Option {
	return func(p *Player) { p.blockDuration = d }
}

// WithPollInterval sets how often the loop checks playback completion and
// the stop signal while a block is in flight.
func WithPollInterval(d time.Duration) Option {
	return func(p *Player) { p.pollInterval = d }
}

// WithRetryBackoff sets the pause after a transient playback error.
func WithRetryBackoff(d time.Duration) Option {
	return func(p *Player) { p.retryBackoff = d }
}

// WithStopTimeout bounds how long Stop waits for the loop to exit.
func WithStopTimeout(d time.Duration) Option {
	return func(p *Player) { p.stopTimeout = d }
}

// WithLogf routes loop diagnostics to the given printf-style function.
// Playback errors are logged and retried, never surfaced to the session.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(p *Player) { p.logf = logf }
}

// Player streams generated noise blocks to a Driver in a gapless loop.
// One background goroutine at most; the state machine makes Start a no-op
// unless the player is idle. Safe for concurrent use: the session UI calls
// SetVolume and Stop from the foreground while the loop runs.
type Player struct {
	driver Driver
	logf   func(format string, args ...interface{})

	blockDuration time.Duration
	pollInterval  time.Duration
	retryBackoff  time.Duration
	stopTimeout   time.Duration

	mu       sync.Mutex
	state    State
	category noise.Category
	volume   int
	handle   Handle        // block currently in flight, for live gain changes
	stop     chan struct{} // closed to request loop shutdown
	done     chan struct{} // closed by the loop on exit
}

// NewPlayer creates an idle player on top of the given driver.
func NewPlayer(driver Driver, opts ...Option) *Player {
	p := &Player{
		driver:        driver,
		blockDuration: noise.DefaultBlockDuration,
		pollInterval:  defaultPollInterval,
		retryBackoff:  defaultRetryBackoff,
		stopTimeout:   defaultStopTimeout,
		logf:          func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins continuous playback of the category at the given volume
// (0-100, clamped). It reports whether playback actually started: a Silent
// category, an unavailable audio device, or a player that is not idle all
// yield false. None of these are errors - playing nothing is a valid
// outcome and must never break the session timer.
func (p *Player) Start(category noise.Category, volume int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		return false
	}
	if category == noise.Silent {
		return false
	}

	p.state = StateStarting
	if err := p.driver.Initialize(); err != nil {
		p.logf("[AMBIENT] audio unavailable, running silent: %v", err)
		p.state = StateIdle
		return false
	}

	p.category = category
	p.volume = clampVolume(volume)
	p.handle = nil
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.state = StateLooping

	go p.loop(p.stop, p.done)
	return true
}

// Stop halts playback and blocks until the background loop has exited, so
// that no more audio is submitted once Stop returns. The wait is bounded;
// on timeout the driver is force-stopped and ErrStopTimeout reported, but
// the player still returns to idle.
func (p *Player) Stop() error {
	p.mu.Lock()
	if p.state != StateLooping {
		p.mu.Unlock()
		return nil
	}
	p.state = StateStopping
	stop, done := p.stop, p.done
	p.mu.Unlock()

	close(stop)

	var err error
	select {
	case <-done:
	case <-time.After(p.stopTimeout):
		p.driver.StopAll()
		err = ErrStopTimeout
	}

	p.mu.Lock()
	p.state = StateIdle
	p.handle = nil
	p.mu.Unlock()
	return err
}

// SetVolume updates the playback volume (0-100, clamped silently). Valid in
// any state. The in-flight block is adjusted live when possible; otherwise
// the next block picks up the new value. No resynthesis happens.
func (p *Player) SetVolume(volume int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = clampVolume(volume)
	if p.handle != nil && p.state == StateLooping {
		p.handle.SetGain(gain(p.volume))
	}
}

// Volume returns the current volume in 0-100.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Category returns the category selected at Start.
func (p *Player) Category() noise.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.category
}

// IsPlaying reports whether the background loop is running.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateLooping
}

// loop generates, encodes and submits one block per iteration, then polls
// for completion. Submitting the next block immediately after the previous
// one finishes is what makes playback continuous despite finite blocks.
// All failures are contained here: a block that cannot be played is dropped
// and retried after a backoff.
func (p *Player) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			p.driver.StopAll()
			return
		default:
		}

		category, volume := p.snapshot()
		block := noise.Generate(category, p.blockDuration, noise.SampleRate)
		buf := noise.EncodeS16LE(block)
		if len(buf) == 0 {
			// Nothing to play; wait and retry.
			if p.sleep(stop, p.retryBackoff) {
				return
			}
			continue
		}

		handle, err := p.driver.Play(buf, gain(volume))
		if err != nil {
			p.logf("[AMBIENT] block playback failed, retrying: %v", err)
			if p.sleep(stop, p.retryBackoff) {
				return
			}
			continue
		}
		p.setHandle(handle)

		for handle.IsPlaying() {
			select {
			case <-stop:
				// Cut the block short rather than waiting it out - stop
				// responsiveness wins over a clean block boundary.
				p.driver.StopAll()
				return
			case <-time.After(p.pollInterval):
			}
		}
	}
}

// sleep waits for d or until stop is signalled, reporting whether the loop
// should exit. Stopping during a backoff still halts the driver.
func (p *Player) sleep(stop <-chan struct{}, d time.Duration) (stopped bool) {
	select {
	case <-stop:
		p.driver.StopAll()
		return true
	case <-time.After(d):
		return false
	}
}

func (p *Player) snapshot() (noise.Category, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.category, p.volume
}

func (p *Player) setHandle(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handle = h
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// gain converts a 0-100 volume to the driver's linear 0.0-1.0 gain.
func gain(volume int) float64 {
	return float64(volume) / 100.0
}
