package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/focusloop/focusloop/internal/session"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D64541"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AA00"))

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AAAA"))

	streakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderQuick returns the brief summary printed after a completed session.
func RenderQuick(sessions []session.Session, now time.Time) string {
	s := Summarize(sessions, now)

	var b strings.Builder
	b.WriteString(headingStyle.Render("📊 Today"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "   Focus sessions: %d\n", s.FocusSessions.Today)
	fmt.Fprintf(&b, "   Focus time:     %s\n", FormatMinutes(s.FocusMinutes.Today))
	if s.BreakSessions.Today > 0 {
		fmt.Fprintf(&b, "   Break time:     %s\n", FormatMinutes(s.BreakMinutes.Today))
	}
	if s.Streak > 0 {
		fmt.Fprintf(&b, "   %s\n", streakStyle.Render(fmt.Sprintf("🔥 Streak: %s", dayCount(s.Streak))))
	}
	return b.String()
}

// RenderFull returns the detailed statistics view for the stats command.
func RenderFull(sessions []session.Session, now time.Time) string {
	if len(sessions) == 0 {
		return mutedStyle.Render("No sessions recorded yet. Start your first focus session!") + "\n"
	}

	s := Summarize(sessions, now)

	var b strings.Builder
	b.WriteString(headingStyle.Render("📊 Productivity Statistics"))
	b.WriteString("\n\n")

	if s.Streak > 0 {
		fire := strings.Repeat("🔥", min(s.Streak, 5))
		b.WriteString(streakStyle.Render(fmt.Sprintf("%s Current streak: %s", fire, dayCount(s.Streak))))
		b.WriteString("\n\n")
	}

	focus := NewPeriodTable()
	focus.AddDurationRow("Focus time", s.FocusMinutes)
	focus.AddCountRow("Focus sessions", s.FocusSessions)
	b.WriteString(sectionStyle.Render("🍅 Focus"))
	b.WriteString("\n")
	b.WriteString(focus.String())

	if s.BreakSessions.All > 0 {
		breaks := NewPeriodTable()
		breaks.AddDurationRow("Break time", s.BreakMinutes)
		breaks.AddCountRow("Break sessions", s.BreakSessions)
		b.WriteString("\n")
		b.WriteString(breakStyle.Render("☕ Breaks"))
		b.WriteString("\n")
		b.WriteString(breaks.String())
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Average focus session: %s\n", FormatMinutes(s.AvgFocusLength))
	return b.String()
}

// RenderHistory returns the most recent sessions, newest first.
func RenderHistory(sessions []session.Session, limit int) string {
	if len(sessions) == 0 {
		return mutedStyle.Render("No sessions recorded yet.") + "\n"
	}

	recent := Recent(sessions, limit)

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("📝 Recent Sessions (last %d)", len(recent))))
	b.WriteString("\n")

	for i, s := range recent {
		icon := "🍅"
		style := sectionStyle
		if s.Type == session.TypeBreak {
			icon = "☕"
			style = breakStyle
		}
		fmt.Fprintf(&b, "%2d. %s %s | %s",
			i+1, icon,
			style.Render(s.Timestamp.Format("2006-01-02 15:04")),
			fmt.Sprintf("%d min", s.Duration))
		if s.Note != "" {
			fmt.Fprintf(&b, " | %s", s.Note)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Recent returns up to limit sessions ordered newest first.
func Recent(sessions []session.Session, limit int) []session.Session {
	sorted := make([]session.Session, len(sessions))
	copy(sorted, sessions)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Timestamp.After(sorted[i].Timestamp) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
