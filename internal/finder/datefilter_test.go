package finder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"20260102", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"202601021330", time.Date(2026, 1, 2, 13, 30, 0, 0, time.UTC)},
		{"20260102133045", time.Date(2026, 1, 2, 13, 30, 45, 0, time.UTC)},
		{"2026/01/02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2026/01/02-13:30", time.Date(2026, 1, 2, 13, 30, 0, 0, time.UTC)},
		{"2026/01/02-13:30:45", time.Date(2026, 1, 2, 13, 30, 45, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDateTime(tt.text)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "ParseDateTime(%q) = %v, want %v", tt.text, got, tt.want)
		})
	}
}

func TestParseDateTimeRejectsMalformedLiterals(t *testing.T) {
	for _, text := range []string{
		"",
		"yesterday",
		"2026-01-02",      // wrong separator
		"2026/1/2",        // not zero-padded
		"20261301",        // month out of range
		"2026/01/02 1330", // mixed shapes
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDateTime(text)
			require.Error(t, err)
			assert.True(t, IsInvalidDate(err), "error type = %T, want *InvalidDateError", err)
		})
	}
}

func TestFilterByDateBounds(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	atStart := FileRecord{Path: "at-start", Created: start, Modified: start}
	inside := FileRecord{Path: "inside", Created: start.Add(24 * time.Hour), Modified: start.Add(24 * time.Hour)}
	atEnd := FileRecord{Path: "at-end", Created: end, Modified: end}
	before := FileRecord{Path: "before", Created: start.Add(-time.Second), Modified: start.Add(-time.Second)}
	records := []FileRecord{atStart, inside, atEnd, before}

	t.Run("start bound is inclusive", func(t *testing.T) {
		got := FilterByDate(records, DateBounds{CreatedStart: &start})
		assert.Equal(t, []FileRecord{atStart, inside, atEnd}, got)
	})

	t.Run("end bound is exclusive", func(t *testing.T) {
		got := FilterByDate(records, DateBounds{ModifiedEnd: &end})
		assert.Equal(t, []FileRecord{atStart, inside, before}, got)
	})

	t.Run("bounds combine with AND", func(t *testing.T) {
		got := FilterByDate(records, DateBounds{
			CreatedStart: &start,
			CreatedEnd:   &end,
			ModifiedEnd:  &end,
		})
		assert.Equal(t, []FileRecord{atStart, inside}, got)
	})

	t.Run("no bounds is a pass-through", func(t *testing.T) {
		got := FilterByDate(records, DateBounds{})
		assert.Equal(t, records, got)
	})
}

// A year-one literal parses to the zero time; it must still act as a real
// bound, not degrade into "no constraint".
func TestFilterByDateYearOneEndBoundExcludesAll(t *testing.T) {
	end, err := ParseDateTime("00010101")
	require.NoError(t, err)
	require.True(t, end.IsZero())

	now := time.Now().UTC()
	records := []FileRecord{{Path: "recent", Created: now, Modified: now}}

	got := FilterByDate(records, DateBounds{CreatedEnd: &end})
	assert.Empty(t, got, "an end bound at year one excludes every record")
}
