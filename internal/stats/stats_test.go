package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/focusloop/focusloop/internal/session"
)

var testNow = time.Date(2026, 8, 23, 14, 0, 0, 0, time.UTC)

func focusAt(t time.Time, minutes int) session.Session {
	return session.Session{Timestamp: t, Duration: minutes, Type: session.TypeFocus}
}

func breakAt(t time.Time, minutes int) session.Session {
	return session.Session{Timestamp: t, Duration: minutes, Type: session.TypeBreak}
}

func TestSummarize(t *testing.T) {
	sessions := []session.Session{
		focusAt(testNow.Add(-2*time.Hour), 25),
		focusAt(testNow.Add(-3*time.Hour), 50),
		focusAt(testNow.AddDate(0, 0, -3), 25),
		focusAt(testNow.AddDate(0, 0, -20), 30),
		breakAt(testNow.Add(-90*time.Minute), 5),
	}

	s := Summarize(sessions, testNow)

	if s.FocusMinutes.Today != 75 {
		t.Errorf("FocusMinutes.Today = %d, want 75", s.FocusMinutes.Today)
	}
	if s.FocusMinutes.Week != 100 {
		t.Errorf("FocusMinutes.Week = %d, want 100", s.FocusMinutes.Week)
	}
	if s.FocusMinutes.Month != 130 {
		t.Errorf("FocusMinutes.Month = %d, want 130", s.FocusMinutes.Month)
	}
	if s.FocusSessions.All != 4 {
		t.Errorf("FocusSessions.All = %d, want 4", s.FocusSessions.All)
	}
	if s.BreakMinutes.Today != 5 || s.BreakSessions.All != 1 {
		t.Errorf("breaks = %dm/%d sessions, want 5m/1", s.BreakMinutes.Today, s.BreakSessions.All)
	}
	if s.AvgFocusLength != 32 {
		t.Errorf("AvgFocusLength = %d, want 32", s.AvgFocusLength)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, testNow)
	if s.AvgFocusLength != 0 || s.Streak != 0 || s.FocusMinutes.All != 0 {
		t.Errorf("empty log produced non-zero summary: %+v", s)
	}
}

func TestFilterUntypedCountsAsFocus(t *testing.T) {
	sessions := []session.Session{
		{Timestamp: testNow, Duration: 25},
		breakAt(testNow, 5),
	}

	focus := Filter(sessions, session.TypeFocus)
	if len(focus) != 1 || focus[0].Duration != 25 {
		t.Errorf("Filter(focus) = %+v, want the untyped 25m session", focus)
	}
	if got := Filter(sessions, session.TypeBreak); len(got) != 1 {
		t.Errorf("Filter(break) returned %d sessions, want 1", len(got))
	}
}

func TestStreak(t *testing.T) {
	day := func(offset int) time.Time {
		return testNow.AddDate(0, 0, offset)
	}

	tests := []struct {
		name     string
		sessions []session.Session
		want     int
	}{
		{"no sessions", nil, 0},
		{"today only", []session.Session{focusAt(day(0), 25)}, 1},
		{"three consecutive days", []session.Session{
			focusAt(day(0), 25), focusAt(day(-1), 25), focusAt(day(-2), 25),
		}, 3},
		{"quiet today keeps yesterday's streak", []session.Session{
			focusAt(day(-1), 25), focusAt(day(-2), 25),
		}, 2},
		{"gap breaks the streak", []session.Session{
			focusAt(day(0), 25), focusAt(day(-2), 25),
		}, 1},
		{"stale history only", []session.Session{
			focusAt(day(-5), 25), focusAt(day(-6), 25),
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.sessions, testNow); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{125, "2h 5m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestRecent(t *testing.T) {
	sessions := []session.Session{
		focusAt(testNow.Add(-3*time.Hour), 25),
		focusAt(testNow.Add(-1*time.Hour), 25),
		focusAt(testNow.Add(-2*time.Hour), 25),
	}

	got := Recent(sessions, 2)
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d sessions, want 2", len(got))
	}
	if !got[0].Timestamp.After(got[1].Timestamp) {
		t.Errorf("Recent() not ordered newest first: %v then %v", got[0].Timestamp, got[1].Timestamp)
	}
	if !got[0].Timestamp.Equal(testNow.Add(-1 * time.Hour)) {
		t.Errorf("Recent()[0] = %v, want the newest session", got[0].Timestamp)
	}
}

func TestPeriodTableAlignment(t *testing.T) {
	table := NewPeriodTable()
	table.AddDurationRow("Focus time", PeriodTotals{Today: 75, Week: 100, Month: 130, All: 160})
	table.AddCountRow("Sessions", PeriodTotals{Today: 2, Week: 3, Month: 4, All: 5})

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Today") || !strings.Contains(lines[0], "All Time") {
		t.Errorf("header missing period columns: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1h 15m") {
		t.Errorf("duration row missing formatted value: %q", lines[1])
	}
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[1]) {
			t.Errorf("row %d width %d differs from row 1 width %d", i, len(lines[i]), len(lines[1]))
		}
	}
}
