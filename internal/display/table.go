// Package display renders search results for human and machine consumption.
//
// It owns all terminal concerns — width probing, TTY detection, column
// layout, color — so the search core never touches ambient OS state. The
// renderer is configured through RenderOptions; callers fill Width
// explicitly (typically via DetectWidth) rather than having the renderer
// probe the terminal itself.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/findfiles/internal/finder"
)

// Mode selects how results are rendered.
type Mode int

const (
	// ModeTable renders fixed-width columns sized to the render width.
	ModeTable Mode = iota
	// ModeTab renders one tab between columns for machine parsing.
	// Sizes are raw bytes and timestamps include seconds.
	ModeTab
	// ModeBare renders one path per line and nothing else.
	ModeBare
)

// Fixed column widths for table mode; the path column takes the remainder.
const (
	sizeWidth     = 10
	createdWidth  = 16
	modifiedWidth = 16
	columnSpacing = 2
)

const (
	tableTimeFormat = "2006-01-02 15:04"
	tabTimeFormat   = "2006-01-02 15:04:05"
)

// RenderOptions configures result rendering.
type RenderOptions struct {
	Mode      Mode
	Width     int  // Total render width; DefaultWidth when unset
	Concise   bool // Suppress header and summary
	GroupDirs bool // Group rows under parent-directory headings (table mode)
	Color     bool // Colorize headings and summary
}

// Renderer writes formatted search results to a single writer.
type Renderer struct {
	opts RenderOptions
	out  io.Writer
}

// NewRenderer creates a Renderer for the given writer and options.
func NewRenderer(out io.Writer, opts RenderOptions) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Renderer{opts: opts, out: out}
}

// Render writes all records in the configured mode, with header and summary
// unless concise output was requested. Bare mode is always concise.
func (r *Renderer) Render(records []finder.FileRecord) {
	if r.opts.Mode == ModeBare {
		for _, rec := range records {
			fmt.Fprintln(r.out, rec.Path)
		}
		return
	}

	if !r.opts.Concise {
		r.header()
	}

	if r.opts.Mode == ModeTable && r.opts.GroupDirs {
		r.renderGrouped(records)
	} else {
		for _, rec := range records {
			r.row(rec)
		}
	}

	if !r.opts.Concise {
		r.footer(len(records))
	}
}

// renderGrouped prints a directory heading whenever the parent directory
// changes between consecutive rows.
func (r *Renderer) renderGrouped(records []finder.FileRecord) {
	lastDir := ""
	for i, rec := range records {
		dir := rec.Dir()
		if i == 0 || dir != lastDir {
			fmt.Fprintf(r.out, "%s\n", r.accent(dir+":"))
			lastDir = dir
		}
		r.row(rec)
	}
}

func (r *Renderer) pathWidth() int {
	w := r.opts.Width - sizeWidth - createdWidth - modifiedWidth - 3*columnSpacing
	if w < 10 {
		w = 10
	}
	return w
}

func (r *Renderer) row(rec finder.FileRecord) {
	if r.opts.Mode == ModeTab {
		fmt.Fprintf(r.out, "%s\t%d\t%s\t%s\n",
			rec.Path, rec.Size,
			rec.Created.Format(tabTimeFormat),
			rec.Modified.Format(tabTimeFormat))
		return
	}

	pw := r.pathWidth()
	path := rec.Path
	// Truncate on runes; %-*s pads by runes, and a byte slice could cut a
	// multi-byte character in half.
	if runes := []rune(path); len(runes) > pw {
		path = string(runes[:pw-3]) + "..."
	}

	// Size in KB, rounded up.
	sizeKB := (rec.Size + 1023) / 1024

	fmt.Fprintf(r.out, "%-*s%s%*d%s%*s%s%*s\n",
		pw, path, spacer(),
		sizeWidth, sizeKB, spacer(),
		createdWidth, rec.Created.Format(tableTimeFormat), spacer(),
		modifiedWidth, rec.Modified.Format(tableTimeFormat))
}

func (r *Renderer) header() {
	if r.opts.Mode == ModeTab {
		fmt.Fprintln(r.out, r.accent("Path\tSize\tCreated Date\tModified Date"))
		return
	}

	pw := r.pathWidth()
	fmt.Fprintln(r.out, r.accent(fmt.Sprintf("%-*s%s%*s%s%*s%s%*s",
		pw, "Path", spacer(),
		sizeWidth, "Size (KB)", spacer(),
		createdWidth, "Created", spacer(),
		modifiedWidth, "Modified")))
	r.separator()
}

func (r *Renderer) footer(count int) {
	r.separator()
	fmt.Fprintln(r.out, r.accent(fmt.Sprintf("Found %d files", count)))
}

func (r *Renderer) separator() {
	if r.opts.Mode == ModeTab {
		fmt.Fprintf(r.out, "%s\t%s\t%s\t%s\n",
			strings.Repeat("-", 10), strings.Repeat("-", 8),
			strings.Repeat("-", 15), strings.Repeat("-", 15))
		return
	}

	pw := r.pathWidth()
	fmt.Fprintf(r.out, "%s%s%s%s%s%s%s\n",
		strings.Repeat("-", pw), spacer(),
		strings.Repeat("-", sizeWidth), spacer(),
		strings.Repeat("-", createdWidth), spacer(),
		strings.Repeat("-", modifiedWidth))
}

// accent colorizes heading and summary text when color output is enabled.
func (r *Renderer) accent(s string) string {
	if !r.opts.Color {
		return s
	}
	return color.New(color.FgCyan).Sprint(s)
}

func spacer() string {
	return strings.Repeat(" ", columnSpacing)
}
