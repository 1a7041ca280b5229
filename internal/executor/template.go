// Package executor expands command templates per matched file and runs the
// rendered commands, either printing them (dry run) or spawning a child
// process and waiting for it.
package executor

import (
	"strings"

	"github.com/harrison/findfiles/internal/finder"
)

// Placeholder token kinds within a parsed template.
const (
	tokenLiteral = iota
	tokenDir     // %d - containing directory
	tokenName    // %n - base filename
	tokenPath    // %f - full path
)

type token struct {
	kind int
	text string // literal text when kind == tokenLiteral
}

// Template is a command template containing zero or more of the %d, %n and
// %f placeholders. The source is tokenized once at construction into
// literal and placeholder spans; substituted values are never re-scanned,
// so paths that themselves contain placeholder sequences render literally.
type Template struct {
	source string
	tokens []token
}

// NewTemplate parses a command template source.
func NewTemplate(source string) *Template {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(source); i++ {
		if source[i] == '%' && i+1 < len(source) {
			var kind int
			switch source[i+1] {
			case 'd':
				kind = tokenDir
			case 'n':
				kind = tokenName
			case 'f':
				kind = tokenPath
			default:
				lit.WriteByte(source[i])
				continue
			}
			flush()
			tokens = append(tokens, token{kind: kind})
			i++
			continue
		}
		lit.WriteByte(source[i])
	}
	flush()

	return &Template{source: source, tokens: tokens}
}

// Render expands the template for a single record. Each placeholder value
// is wrapped in double quotes; the directory of a bare filename renders as
// the current-directory marker ".".
func (t *Template) Render(record finder.FileRecord) string {
	var sb strings.Builder
	for _, tok := range t.tokens {
		switch tok.kind {
		case tokenLiteral:
			sb.WriteString(tok.text)
		case tokenDir:
			sb.WriteString(quote(record.Dir()))
		case tokenName:
			sb.WriteString(quote(record.Name()))
		case tokenPath:
			sb.WriteString(quote(record.Path))
		}
	}
	return sb.String()
}

// String returns the original template source.
func (t *Template) String() string {
	return t.source
}

func quote(s string) string {
	return `"` + s + `"`
}
