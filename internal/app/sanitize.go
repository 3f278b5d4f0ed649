package app

import (
	"regexp"
	"strings"
)

var trailingCommas = regexp.MustCompile(`,(\s*[}\]])`)

// sanitizeResponse cleans raw model output before JSON decoding: strips
// markdown code fences, cuts surrounding prose down to the outermost
// JSON array by bracket counting, and removes trailing commas (a common
// model error). Returns the input unchanged-ish when no array is found;
// the decode step reports the failure.
func sanitizeResponse(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	first := strings.Index(s, "[")
	if first == -1 {
		return s
	}

	// Walk to the bracket that closes the outermost array, skipping
	// brackets inside string literals.
	depth := 0
	last := -1
	inStr := false
	escaped := false
	for i := first; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inStr:
			escaped = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				last = i
			}
		}
		if last != -1 {
			break
		}
	}
	if last == -1 {
		// Unbalanced; fall back to the last closing bracket.
		last = strings.LastIndex(s, "]")
		if last <= first {
			return s
		}
	}

	return trailingCommas.ReplaceAllString(strings.TrimSpace(s[first:last+1]), "$1")
}
