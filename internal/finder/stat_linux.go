//go:build linux

package finder

import (
	"io/fs"
	"syscall"
	"time"
)

// extractTimes pulls creation and modification times from the metadata
// snapshot returned by directory enumeration, normalized to UTC.
// Linux does not expose a portable birth time, so the inode change time
// stands in for creation time.
func extractTimes(info fs.FileInfo) (created, modified time.Time) {
	modified = info.ModTime().UTC()
	created = modified
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		created = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec).UTC()
	}
	return created, modified
}
