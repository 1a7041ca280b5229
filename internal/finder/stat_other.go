//go:build !linux && !darwin

package finder

import (
	"io/fs"
	"time"
)

// extractTimes pulls creation and modification times from the metadata
// snapshot returned by directory enumeration, normalized to UTC.
// Platforms without an accessible birth time report the modification time
// for both.
func extractTimes(info fs.FileInfo) (created, modified time.Time) {
	modified = info.ModTime().UTC()
	return modified, modified
}
