package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/focusloop/focusloop/internal/noise"
)

// renderCountdown renders the main running-timer view
func renderCountdown(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	b.WriteString(renderClock(m))
	b.WriteString("\n\n")

	b.WriteString(renderProgress(m))
	b.WriteString("\n")

	if m.Texture != noise.TextureNone {
		b.WriteString("\n")
		b.WriteString(renderSoundStatus(m))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHints(m))

	return b.String()
}

// renderHeader renders the session title line
func renderHeader(m Model) string {
	var title string
	switch m.Kind {
	case KindBreak:
		title = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AAAA")).
			Render("☕ Break Time")
	default:
		title = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D64541")).
			Render("🍅 Focus Session")
	}

	if m.Note != "" {
		note := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true).
			Render(m.Note)
		return title + "\n" + note
	}
	return title
}

// renderClock renders the remaining time as MM:SS
func renderClock(m Model) string {
	remaining := m.Remaining.Round(time.Second)
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60

	clock := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Render(fmt.Sprintf("  %02d:%02d  ", mins, secs))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(m.Kind)).
		Padding(0, 2).
		Render(clock)
}

// renderProgress renders the elapsed-time progress bar
func renderProgress(m Model) string {
	progress := 0.0
	if m.Total > 0 {
		progress = 1 - float64(m.Remaining)/float64(m.Total)
	}
	return renderProgressBar(progress, 40)
}

// renderProgressBar renders a progress bar
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	return fmt.Sprintf("%s %d%%", bar, percentage)
}

// renderSoundStatus renders the ambient sound line
func renderSoundStatus(m Model) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	if m.Player == nil {
		return muted.Render(fmt.Sprintf("%s %s (audio unavailable)",
			m.Texture.Icon(), m.Texture.DisplayName()))
	}
	if m.Muted {
		return muted.Render(fmt.Sprintf("🔇 %s (muted)", m.Texture.DisplayName()))
	}
	return fmt.Sprintf("%s %s  %s %d%%",
		m.Texture.Icon(), m.Texture.DisplayName(),
		renderVolumeBar(m.Volume), m.Volume)
}

// renderVolumeBar renders a compact 10-segment volume indicator
func renderVolumeBar(volume int) string {
	filled := volume / 10
	return strings.Repeat("▮", filled) + strings.Repeat("▯", 10-filled)
}

// renderKeyHints renders the footer key bindings
func renderKeyHints(m Model) string {
	hints := "q quit"
	if m.Texture != noise.TextureNone && m.Player != nil {
		hints = "q quit · +/- volume · m mute"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(hints)
}

// renderCompletion renders the final frame before the program exits
func renderCompletion(m Model) string {
	if m.Kind == KindBreak {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AAAA")).
			Render("☕ Break complete!") + "\n"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Focus session complete!") + "\n"
}

func borderColor(k Kind) lipgloss.Color {
	if k == KindBreak {
		return lipgloss.Color("#00AAAA")
	}
	return lipgloss.Color("#D64541")
}
