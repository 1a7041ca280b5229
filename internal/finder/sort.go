package finder

import (
	"sort"
	"strings"
)

// SortField identifies a FileRecord attribute used for ordering.
type SortField int

const (
	// SortByPath orders by the full path.
	SortByPath SortField = iota
	// SortByName orders by the component after the last path separator.
	SortByName
	// SortBySize orders by byte size.
	SortBySize
	// SortByCreated orders by creation time.
	SortByCreated
	// SortByModified orders by modification time.
	SortByModified
)

// SortKey pairs a field with a direction.
type SortKey struct {
	Field     SortField
	Ascending bool
}

// ParseSortSpec parses a sort specification string into an ordered key list.
// Each letter selects a field (p=path, n=name, s=size, c=created,
// m=modified); a preceding '-' flips only the next field to descending and
// resets afterward. Unknown characters are skipped. An empty or all-invalid
// spec defaults to ascending path order.
func ParseSortSpec(spec string) []SortKey {
	var keys []SortKey
	ascending := true

	for _, c := range spec {
		if c == '-' {
			ascending = false
			continue
		}

		var field SortField
		switch c {
		case 'p':
			field = SortByPath
		case 'n':
			field = SortByName
		case 's':
			field = SortBySize
		case 'c':
			field = SortByCreated
		case 'm':
			field = SortByModified
		default:
			continue
		}

		keys = append(keys, SortKey{Field: field, Ascending: ascending})
		ascending = true
	}

	if len(keys) == 0 {
		keys = []SortKey{{Field: SortByPath, Ascending: true}}
	}

	return keys
}

// Sort orders records in place by the given keys. The sort is stable; keys
// are evaluated in priority order with later keys breaking ties, and
// ascending path comparison is the final tie-break when every key compares
// equal.
func Sort(records []FileRecord, keys []SortKey) {
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j], keys)
	})
}

func less(a, b FileRecord, keys []SortKey) bool {
	for _, key := range keys {
		var cmp int
		switch key.Field {
		case SortByPath:
			cmp = strings.Compare(a.Path, b.Path)
		case SortByName:
			cmp = strings.Compare(a.Name(), b.Name())
		case SortBySize:
			switch {
			case a.Size < b.Size:
				cmp = -1
			case a.Size > b.Size:
				cmp = 1
			}
		case SortByCreated:
			cmp = a.Created.Compare(b.Created)
		case SortByModified:
			cmp = a.Modified.Compare(b.Modified)
		}

		if cmp == 0 {
			continue
		}
		if key.Ascending {
			return cmp < 0
		}
		return cmp > 0
	}

	// All keys tied; fall back to ascending path.
	return a.Path < b.Path
}
