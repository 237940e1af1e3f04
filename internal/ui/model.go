// Package ui provides the Bubbletea terminal user interface for the timer
package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/focusloop/focusloop/internal/ambient"
	"github.com/focusloop/focusloop/internal/noise"
)

var debugLog *os.File

func init() {
	if os.Getenv("FOCUSLOOP_DEBUG") != "" {
		debugLog, _ = os.OpenFile("focusloop-ui-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func log(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
	}
}

// Kind distinguishes focus timers from break timers in the UI
type Kind int

const (
	KindFocus Kind = iota
	KindBreak
)

// Model is the Bubbletea model for a running countdown timer
type Model struct {
	Kind    Kind
	Note    string
	Texture noise.Texture

	// Countdown state
	Total     time.Duration
	Remaining time.Duration
	StartTime time.Time

	// Ambient playback, nil when sound is disabled or unavailable
	Player *ambient.Player
	Volume int
	Muted  bool

	// Outcome, readable after the program exits
	Cancelled bool
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a countdown model for the given duration
func NewModel(kind Kind, total time.Duration, note string, tex noise.Texture, player *ambient.Player, volume int) Model {
	return Model{
		Kind:      kind,
		Note:      note,
		Texture:   tex,
		Total:     total,
		Remaining: total,
		StartTime: time.Now(),
		Player:    player,
		Volume:    volume,
	}
}

// Init starts the countdown tick
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			log("[DEBUG] Cancelled with %s remaining", m.Remaining)
			m.Cancelled = true
			return m, tea.Quit

		case "+", "=":
			return m.adjustVolume(5), nil

		case "-", "_":
			return m.adjustVolume(-5), nil

		case "m":
			return m.toggleMute(), nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		log("[DEBUG] Window size: %dx%d", m.Width, m.Height)

	case tickMsg:
		// Derive remaining from wall clock so a suspended terminal
		// doesn't stretch the session
		elapsed := time.Since(m.StartTime)
		m.Remaining = m.Total - elapsed
		if m.Remaining <= 0 {
			m.Remaining = 0
			m.Done = true
			log("[DEBUG] Countdown complete after %s", elapsed)
			return m, tea.Quit
		}
		return m, tickCmd()
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletion(m)
	}
	return renderCountdown(m)
}

// adjustVolume nudges playback volume by delta, unmuting if muted
func (m Model) adjustVolume(delta int) Model {
	m.Volume = clamp(m.Volume+delta, 0, 100)
	m.Muted = false
	if m.Player != nil {
		m.Player.SetVolume(m.Volume)
	}
	log("[DEBUG] Volume adjusted to %d", m.Volume)
	return m
}

// toggleMute silences playback without losing the chosen volume
func (m Model) toggleMute() Model {
	m.Muted = !m.Muted
	if m.Player != nil {
		if m.Muted {
			m.Player.SetVolume(0)
		} else {
			m.Player.SetVolume(m.Volume)
		}
	}
	log("[DEBUG] Muted: %v", m.Muted)
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
