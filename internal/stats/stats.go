// Package stats computes and renders productivity statistics over the
// session log: focus/break totals per period, session counts, averages and
// the current day-streak.
package stats

import (
	"fmt"
	"time"

	"github.com/focusloop/focusloop/internal/session"
)

// Summary aggregates the session log into the figures shown by the stats
// command. Minutes and counts are split per period and per session type.
type Summary struct {
	FocusMinutes   PeriodTotals
	FocusSessions  PeriodTotals
	BreakMinutes   PeriodTotals
	BreakSessions  PeriodTotals
	AvgFocusLength int // minutes; 0 when there are no focus sessions
	Streak         int // consecutive days with at least one focus session
}

// PeriodTotals holds one metric across the standard reporting periods.
type PeriodTotals struct {
	Today int
	Week  int
	Month int
	All   int
}

// Summarize computes the full summary relative to now.
func Summarize(sessions []session.Session, now time.Time) Summary {
	focus := Filter(sessions, session.TypeFocus)
	breaks := Filter(sessions, session.TypeBreak)

	s := Summary{
		FocusMinutes:  periodMinutes(focus, now),
		FocusSessions: periodCounts(focus, now),
		BreakMinutes:  periodMinutes(breaks, now),
		BreakSessions: periodCounts(breaks, now),
		Streak:        Streak(focus, now),
	}
	if len(focus) > 0 {
		s.AvgFocusLength = TotalMinutes(focus) / len(focus)
	}
	return s
}

func periodMinutes(sessions []session.Session, now time.Time) PeriodTotals {
	return PeriodTotals{
		Today: TotalMinutes(InRange(sessions, now, 1)),
		Week:  TotalMinutes(InRange(sessions, now, 7)),
		Month: TotalMinutes(InRange(sessions, now, 30)),
		All:   TotalMinutes(sessions),
	}
}

func periodCounts(sessions []session.Session, now time.Time) PeriodTotals {
	return PeriodTotals{
		Today: len(InRange(sessions, now, 1)),
		Week:  len(InRange(sessions, now, 7)),
		Month: len(InRange(sessions, now, 30)),
		All:   len(sessions),
	}
}

// Filter returns the sessions of the given type. Sessions recorded without
// a type (older logs) count as focus.
func Filter(sessions []session.Session, typ session.Type) []session.Session {
	var out []session.Session
	for _, s := range sessions {
		t := s.Type
		if t == "" {
			t = session.TypeFocus
		}
		if t == typ {
			out = append(out, s)
		}
	}
	return out
}

// InRange returns the sessions recorded within the last days days.
func InRange(sessions []session.Session, now time.Time, days int) []session.Session {
	cutoff := now.AddDate(0, 0, -days)
	var out []session.Session
	for _, s := range sessions {
		if !s.Timestamp.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// TotalMinutes sums the durations of the given sessions.
func TotalMinutes(sessions []session.Session) int {
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

// Streak counts consecutive calendar days (in now's location) with at least
// one session, ending today. A streak survives a quiet today as long as
// yesterday has a session - today just doesn't count yet.
func Streak(sessions []session.Session, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[dayKey(s.Timestamp.In(now.Location()))] = true
	}

	streak := 0
	today := now
	if days[dayKey(today)] {
		streak++
	} else if !days[dayKey(today.AddDate(0, 0, -1))] {
		return 0
	}

	for check := today.AddDate(0, 0, -1); days[dayKey(check)]; check = check.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMinutes renders a duration in minutes as "2h 5m" or "45m".
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
