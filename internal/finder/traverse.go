package finder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Traverse enumerates files under root that match the pattern, recursing
// into subdirectories when recursive is true. Each call builds and returns
// its own slice; recursive results are merged into the caller's slice, so
// no accumulator is shared across frames.
//
// Enumeration is fail-soft: a root (or subtree) that does not exist yields
// an empty result, and any other enumeration failure is collected as a
// *DirectoryAccessError without aborting sibling subtrees. Records appear
// in depth-first discovery order; callers needing a deterministic order
// apply Sort.
func Traverse(root string, pattern *Pattern, recursive bool) ([]FileRecord, []error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{&DirectoryAccessError{Dir: root, Err: err}}
	}

	var records []FileRecord
	var accessErrs []error

	for _, entry := range entries {
		fullPath := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			if !recursive {
				continue
			}
			subRecords, subErrs := Traverse(fullPath, pattern, recursive)
			records = append(records, subRecords...)
			accessErrs = append(accessErrs, subErrs...)
			continue
		}

		candidate := entry.Name()
		if pattern.Target() == MatchPath {
			candidate = fullPath
		}
		if !pattern.Match(candidate) {
			continue
		}

		// Use the metadata snapshot already captured by enumeration;
		// no second stat call.
		info, err := entry.Info()
		if err != nil {
			accessErrs = append(accessErrs, &DirectoryAccessError{Dir: fullPath, Err: err})
			continue
		}

		created, modified := extractTimes(info)
		records = append(records, FileRecord{
			Path:     fullPath,
			Size:     info.Size(),
			Created:  created,
			Modified: modified,
		})
	}

	return records, accessErrs
}
