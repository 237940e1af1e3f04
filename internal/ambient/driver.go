// Package ambient plays procedurally generated background noise in a
// continuous, gapless loop during focus sessions. It owns the audio device
// lifecycle and the single background goroutine that keeps the loop fed.
package ambient

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/focusloop/focusloop/internal/noise"
)

// ErrNotInitialized is returned by Play when the driver has no usable audio
// device, either because Initialize was never called or because it failed.
var ErrNotInitialized = errors.New("audio device not initialized")

// Handle tracks one submitted block through asynchronous playback.
type Handle interface {
	// IsPlaying reports whether the block is still audible. Non-blocking.
	IsPlaying() bool

	// SetGain adjusts the linear gain (0.0-1.0) of the in-flight block, so
	// volume changes take effect without waiting for the next block.
	SetGain(gain float64)
}

// Driver abstracts the host audio subsystem so the player loop can be
// exercised in tests without a sound card.
type Driver interface {
	// Initialize opens the audio device. Idempotent: repeated calls return
	// the outcome of the first. Failure means no audio output is available;
	// it is reported, not fatal - the player degrades to a silent no-op.
	Initialize() error

	// Play submits an encoded sample block for asynchronous playback at the
	// given linear gain and returns a handle for querying completion.
	Play(buf []byte, gain float64) (Handle, error)

	// StopAll immediately halts any in-flight playback.
	StopAll()

	// Close stops playback and releases the device.
	Close() error
}

// otoDriver drives the host audio device through an oto context. The context
// is process-wide state in oto, so the driver creates it exactly once and
// remembers the result.
type otoDriver struct {
	mu      sync.Mutex
	ctx     *oto.Context
	initErr error
	inited  bool
	active  []*oto.Player
}

// NewDriver returns a Driver backed by the host audio device.
func NewDriver() Driver {
	return &otoDriver{}
}

func (d *otoDriver) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inited {
		return d.initErr
	}
	d.inited = true

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   noise.SampleRate,
		ChannelCount: noise.Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		d.initErr = fmt.Errorf("open audio device: %w", err)
		return d.initErr
	}
	<-ready

	d.ctx = ctx
	return nil
}

func (d *otoDriver) Play(buf []byte, gain float64) (Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ctx == nil {
		return nil, ErrNotInitialized
	}

	d.reapLocked()

	p := d.ctx.NewPlayer(bytes.NewReader(buf))
	p.SetVolume(gain)
	p.Play()
	d.active = append(d.active, p)
	return &otoHandle{p: p}, nil
}

func (d *otoDriver) StopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.active {
		p.Close()
	}
	d.active = nil
}

func (d *otoDriver) Close() error {
	d.StopAll()
	return nil
}

// reapLocked closes players that finished playing. Called with d.mu held.
// Keeps the active list at one or two entries in steady state.
func (d *otoDriver) reapLocked() {
	live := d.active[:0]
	for _, p := range d.active {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			p.Close()
		}
	}
	d.active = live
}

type otoHandle struct {
	p *oto.Player
}

func (h *otoHandle) IsPlaying() bool {
	return h.p.IsPlaying()
}

func (h *otoHandle) SetGain(gain float64) {
	h.p.SetVolume(gain)
}
