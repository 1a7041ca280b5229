// Package finder implements the file search core: pattern compilation,
// recursive directory traversal, date-range filtering, and multi-key sorting.
//
// The pipeline is CompilePattern -> Traverse -> FilterByDate -> Sort; each
// step consumes and produces plain FileRecord slices so callers can compose
// only the steps they need.
package finder

import (
	"path/filepath"
	"time"
)

// FileRecord describes a single matched filesystem entry. Records are built
// once during traversal from the enumeration metadata snapshot and are
// treated as read-only downstream. Timestamps are normalized to UTC so
// comparisons are well-ordered regardless of the host timezone.
type FileRecord struct {
	// Path is the full path to the file, without a trailing separator.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Created is the file creation time in UTC. On filesystems without a
	// birth time this is the closest available timestamp (see extractTimes).
	Created time.Time

	// Modified is the last modification time in UTC.
	Modified time.Time
}

// Name returns the component after the last path separator, or the whole
// path if it contains none.
func (r FileRecord) Name() string {
	return filepath.Base(r.Path)
}

// Dir returns the containing directory, or "." when the path has no
// separator.
func (r FileRecord) Dir() string {
	return filepath.Dir(r.Path)
}
