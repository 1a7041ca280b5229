package finder

import "time"

// dateLayouts are the accepted date/time literal shapes, all numeric and
// zero-padded. Every layout has a distinct length, so a literal is matched
// by length before parsing.
var dateLayouts = []string{
	"20060102",
	"200601021504",
	"20060102150405",
	"2006/01/02",
	"2006/01/02-15:04",
	"2006/01/02-15:04:05",
}

// ParseDateTime parses a date/time literal in one of the accepted shapes
// (YYYYMMDD, YYYYMMDDHHMM, YYYYMMDDHHMMSS, YYYY/MM/DD, YYYY/MM/DD-HH:MM,
// YYYY/MM/DD-HH:MM:SS) into a UTC timestamp. Any other text fails with an
// *InvalidDateError.
func ParseDateTime(text string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if len(layout) != len(text) {
			continue
		}
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidDateError{Text: text}
}

// DateBounds holds optional timestamp constraints on a record's creation
// and modification times. Start bounds are inclusive, end bounds exclusive.
// A nil pointer means no constraint on that side, so any parsed literal is
// a real bound, including the year-one zero time. All set bounds combine
// with logical AND.
type DateBounds struct {
	CreatedStart  *time.Time
	CreatedEnd    *time.Time
	ModifiedStart *time.Time
	ModifiedEnd   *time.Time
}

// IsZero reports whether no bound is set.
func (b DateBounds) IsZero() bool {
	return b.CreatedStart == nil && b.CreatedEnd == nil &&
		b.ModifiedStart == nil && b.ModifiedEnd == nil
}

// match reports whether a record satisfies every set bound.
func (b DateBounds) match(r FileRecord) bool {
	if b.CreatedStart != nil && r.Created.Before(*b.CreatedStart) {
		return false
	}
	if b.CreatedEnd != nil && !r.Created.Before(*b.CreatedEnd) {
		return false
	}
	if b.ModifiedStart != nil && r.Modified.Before(*b.ModifiedStart) {
		return false
	}
	if b.ModifiedEnd != nil && !r.Modified.Before(*b.ModifiedEnd) {
		return false
	}
	return true
}

// FilterByDate returns the records whose timestamps satisfy the bounds.
// With no bounds set the input slice is returned unchanged.
func FilterByDate(records []FileRecord, bounds DateBounds) []FileRecord {
	if bounds.IsZero() {
		return records
	}

	filtered := make([]FileRecord, 0, len(records))
	for _, r := range records {
		if bounds.match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
