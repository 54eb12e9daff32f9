// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package window resolves calendar-month date ranges for fetch runs.
package window

import (
	"fmt"
	"time"
)

// Month is an inclusive date range covering one calendar month, plus the
// YYYY-MM label used to name the output file.
type Month struct {
	Start time.Time
	End   time.Time
	Label string
}

// Previous returns the calendar month immediately before today's month.
// A run on 2026-01-07 yields 2025-12-01 through 2025-12-31 with label
// "2025-12".
func Previous(today time.Time) Month {
	firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfPrev := firstOfThisMonth.AddDate(0, 0, -1)
	return Of(lastOfPrev.Year(), lastOfPrev.Month())
}

// Of returns the window for an explicit year and month.
func Of(year int, month time.Month) Month {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{
		Start: start,
		End:   start.AddDate(0, 1, -1),
		Label: fmt.Sprintf("%04d-%02d", year, int(month)),
	}
}

// Parse resolves a YYYY-MM label into its month window.
func Parse(label string) (Month, error) {
	t, err := time.Parse("2006-01", label)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", label, err)
	}
	return Of(t.Year(), t.Month()), nil
}
