//go:build darwin

package finder

import (
	"io/fs"
	"syscall"
	"time"
)

// extractTimes pulls creation and modification times from the metadata
// snapshot returned by directory enumeration, normalized to UTC.
// Darwin exposes the file birth time directly.
func extractTimes(info fs.FileInfo) (created, modified time.Time) {
	modified = info.ModTime().UTC()
	created = modified
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		created = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec).UTC()
	}
	return created, modified
}
