package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harrison/findfiles/internal/finder"
)

func sampleRecords() []finder.FileRecord {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return []finder.FileRecord{
		{Path: "a/file.txt", Size: 1500, Created: ts, Modified: ts},
		{Path: "b/other.txt", Size: 10, Created: ts.Add(time.Hour), Modified: ts.Add(time.Hour)},
	}
}

func render(records []finder.FileRecord, opts RenderOptions) string {
	var buf bytes.Buffer
	NewRenderer(&buf, opts).Render(records)
	return buf.String()
}

// TestRenderBare verifies one-path-per-line output with no decoration
func TestRenderBare(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeBare})

	want := "a/file.txt\nb/other.txt\n"
	if got != want {
		t.Errorf("bare output = %q, want %q", got, want)
	}
}

// TestRenderTab verifies machine-parseable output: raw bytes, seconds
func TestRenderTab(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeTab, Concise: true})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	want := "a/file.txt\t1500\t2026-01-02 03:04:05\t2026-01-02 03:04:05"
	if lines[0] != want {
		t.Errorf("tab row = %q, want %q", lines[0], want)
	}
}

// TestRenderTableRow verifies column content, KB rounding, minute times
func TestRenderTableRow(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeTable, Width: 79, Concise: true})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}

	// 1500 bytes rounds up to 2 KB.
	fields := strings.Fields(lines[0])
	want := []string{"a/file.txt", "2", "2026-01-02", "03:04", "2026-01-02", "03:04"}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}
}

// TestRenderTableTruncatesLongPaths verifies ellipsis truncation
func TestRenderTableTruncatesLongPaths(t *testing.T) {
	long := strings.Repeat("p", 60)
	records := []finder.FileRecord{{Path: long, Size: 1}}

	got := render(records, RenderOptions{Mode: ModeTable, Width: 79, Concise: true})

	// Width 79 leaves 31 columns for the path: 28 characters plus "...".
	wantPrefix := long[:28] + "..."
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("row %q does not start with %q", got, wantPrefix)
	}
	if strings.Contains(got, long) {
		t.Error("long path should have been truncated")
	}
}

// TestRenderTableTruncatesOnRunes verifies multi-byte paths are never cut
// mid-character
func TestRenderTableTruncatesOnRunes(t *testing.T) {
	long := strings.Repeat("ü", 60)
	records := []finder.FileRecord{{Path: long, Size: 1}}

	got := render(records, RenderOptions{Mode: ModeTable, Width: 79, Concise: true})

	// Width 79 leaves 31 columns for the path: 28 runes plus "...".
	wantPrefix := strings.Repeat("ü", 28) + "..."
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("row %q does not start with %q", got, wantPrefix)
	}
	if strings.ContainsRune(got, '�') {
		t.Error("truncation produced an invalid UTF-8 sequence")
	}
}

// TestRenderTableHeaderAndSummary verifies non-concise decoration
func TestRenderTableHeaderAndSummary(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeTable, Width: 79})

	for _, want := range []string{"Path", "Size (KB)", "Created", "Modified", "Found 2 files"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(got, strings.Repeat("-", sizeWidth)) {
		t.Error("output missing separator line")
	}
}

// TestRenderConciseSuppressesDecoration verifies --concise behavior
func TestRenderConciseSuppressesDecoration(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeTable, Width: 79, Concise: true})

	if strings.Contains(got, "Found") || strings.Contains(got, "Size (KB)") {
		t.Errorf("concise output should have no header or summary: %q", got)
	}
}

// TestRenderGrouped verifies parent-directory headings
func TestRenderGrouped(t *testing.T) {
	got := render(sampleRecords(), RenderOptions{Mode: ModeTable, Width: 79, Concise: true, GroupDirs: true})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4 (two headings, two rows)", len(lines))
	}
	if lines[0] != "a:" || lines[2] != "b:" {
		t.Errorf("headings = %q and %q, want a: and b:", lines[0], lines[2])
	}
}

// TestRenderKBRounding verifies round-up division edge cases
func TestRenderKBRounding(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1024, "1"},
		{1025, "2"},
	}

	for _, tt := range tests {
		records := []finder.FileRecord{{Path: "f", Size: tt.size}}
		got := render(records, RenderOptions{Mode: ModeTable, Width: 79, Concise: true})
		fields := strings.Fields(got)
		if len(fields) < 2 || fields[1] != tt.want {
			t.Errorf("size %d rendered %v, want KB %q", tt.size, fields, tt.want)
		}
	}
}

// TestRendererDefaultWidth verifies the fallback when Width is unset
func TestRendererDefaultWidth(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, RenderOptions{})
	if r.opts.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", r.opts.Width, DefaultWidth)
	}
}
