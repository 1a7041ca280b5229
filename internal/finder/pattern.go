package finder

import (
	"regexp"
	"strings"
)

// MatchTarget selects which candidate string a Pattern is tested against.
type MatchTarget int

const (
	// MatchName tests the pattern against the filename only. The pattern
	// must match the entire name.
	MatchName MatchTarget = iota
	// MatchPath tests the pattern against the full path. The pattern may
	// match any substring of the path.
	MatchPath
)

// Pattern is a compiled, immutable matcher. It is safe to share across
// recursive traversal calls.
type Pattern struct {
	re     *regexp.Regexp
	target MatchTarget
	source string
}

// CompilePattern compiles a pattern source into a Pattern.
//
// When useRegex is false the source is a DOS-style wildcard: '*' matches any
// run of characters, '?' matches exactly one character, and everything else
// is literal. When useRegex is true the source is used verbatim as a regular
// expression; anchoring is the caller's responsibility in path mode.
//
// In name mode (pathMatch=false) the pattern must match the entire filename.
// In path mode (pathMatch=true) the pattern is searched as a substring of
// the full path. Matching is case-insensitive in all modes.
//
// Returns an *InvalidPatternError when the source does not compile.
func CompilePattern(source string, useRegex, pathMatch bool) (*Pattern, error) {
	expr := source
	if !useRegex {
		expr = wildcardToRegexp(source)
	}
	if !pathMatch {
		expr = `\A(?:` + expr + `)\z`
	}

	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return nil, &InvalidPatternError{Source: source, Err: err}
	}

	target := MatchName
	if pathMatch {
		target = MatchPath
	}

	return &Pattern{re: re, target: target, source: source}, nil
}

// Target returns which candidate string the pattern is tested against.
func (p *Pattern) Target() MatchTarget {
	return p.target
}

// Match reports whether the candidate string satisfies the pattern.
func (p *Pattern) Match(candidate string) bool {
	return p.re.MatchString(candidate)
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.source
}

// wildcardToRegexp translates a DOS wildcard into a regular expression.
// Regex metacharacters in the source are escaped so they match literally;
// '*' becomes ".*" and '?' becomes ".". The result is unanchored; callers
// add anchors as needed.
func wildcardToRegexp(pattern string) string {
	var sb strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteByte('.')
		case '.', '[', ']', '(', ')', '{', '}', '+', '^', '$', '|', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
