package stats

import (
	"fmt"
	"strings"
)

// PeriodRow is a single metric row in a period-comparison table. Values are
// pre-formatted strings so counts and durations can share one table.
type PeriodRow struct {
	Label  string   // e.g. "Focus time"
	Values []string // one value per period column
}

// PeriodTable formats aligned columns for per-period metric comparison:
// labels left-aligned, values right-aligned within their column.
type PeriodTable struct {
	Headers []string
	Rows    []PeriodRow
}

// NewPeriodTable creates a table with the standard reporting periods.
func NewPeriodTable() *PeriodTable {
	return &PeriodTable{
		Headers: []string{"Today", "Week", "Month", "All Time"},
	}
}

// AddRow adds a row with pre-formatted values.
func (t *PeriodTable) AddRow(label string, values ...string) {
	t.Rows = append(t.Rows, PeriodRow{Label: label, Values: values})
}

// AddCountRow adds a row of plain integer counts.
func (t *PeriodTable) AddCountRow(label string, totals PeriodTotals) {
	t.AddRow(label,
		fmt.Sprintf("%d", totals.Today),
		fmt.Sprintf("%d", totals.Week),
		fmt.Sprintf("%d", totals.Month),
		fmt.Sprintf("%d", totals.All),
	)
}

// AddDurationRow adds a row of minute totals formatted as durations.
func (t *PeriodTable) AddDurationRow(label string, totals PeriodTotals) {
	t.AddRow(label,
		FormatMinutes(totals.Today),
		FormatMinutes(totals.Week),
		FormatMinutes(totals.Month),
		FormatMinutes(totals.All),
	)
}

// String renders the table with aligned columns.
func (t *PeriodTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	// Each value column is at least as wide as its header.
	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	var sb strings.Builder

	// Header row.
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s", valueWidths[i], header))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	// Data rows; missing values render as "-".
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))
		for i := range t.Headers {
			val := "-"
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s", valueWidths[i], val))
			if i < len(t.Headers)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
