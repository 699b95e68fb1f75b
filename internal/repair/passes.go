package repair

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	pyNone        = regexp.MustCompile(`\bNone\b`)
	pyTrue        = regexp.MustCompile(`\bTrue\b`)
	pyFalse       = regexp.MustCompile(`\bFalse\b`)
	unquotedKey   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)
	objectSeam    = regexp.MustCompile(`}\s*{`)
	arraySeam     = regexp.MustCompile(`]\s*\[`)

	smartQuotes = strings.NewReplacer(
		"“", `"`, // left double
		"”", `"`, // right double
		"‘", `"`, // left single
		"’", `"`, // right single
		"«", `"`,
		"»", `"`,
	)
)

// RepairString applies the ordered repair passes to a candidate payload.
// Every pass is idempotent, so repairing an already-repaired string is a
// no-op.
func RepairString(s string) string {
	// Smart and curly quotes become plain double quotes.
	s = smartQuotes.Replace(s)

	// Collapse whitespace runs, including raw newlines inside strings,
	// which strict JSON rejects.
	s = strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))

	// Trailing commas before a closer.
	s = trailingComma.ReplaceAllString(s, "$1")

	// Python literals.
	s = pyNone.ReplaceAllString(s, "null")
	s = pyTrue.ReplaceAllString(s, "true")
	s = pyFalse.ReplaceAllString(s, "false")

	// Unquoted object keys.
	s = unquotedKey.ReplaceAllString(s, `$1"$2"$3`)

	// Escaped quotes from models that double-escape their output.
	s = strings.ReplaceAll(s, `\"`, `"`)

	// Missing commas between adjacent objects or arrays.
	s = objectSeam.ReplaceAllString(s, "},{")
	s = arraySeam.ReplaceAllString(s, "],[")

	return balance(s)
}

// balance appends missing closing brackets and braces. Closers are only
// ever added; surplus closers are left for the parser to reject.
func balance(s string) string {
	openBraces := strings.Count(s, "{") - strings.Count(s, "}")
	openBrackets := strings.Count(s, "[") - strings.Count(s, "]")
	if openBrackets > 0 {
		s += strings.Repeat("]", openBrackets)
	}
	if openBraces > 0 {
		s += strings.Repeat("}", openBraces)
	}
	return s
}

// recoverTruncated walks backward through the payload looking for the last
// '}' that closes a parseable prefix, closing any arrays still open at that
// point. This salvages output cut off by a token limit.
func recoverTruncated(s string) (map[string]any, bool) {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != '}' {
			continue
		}
		candidate := s[:i+1]
		if open := strings.Count(candidate, "[") - strings.Count(candidate, "]"); open > 0 {
			candidate += strings.Repeat("]", open)
		}
		if open := strings.Count(candidate, "{") - strings.Count(candidate, "}"); open > 0 {
			candidate += strings.Repeat("}", open)
		}
		if parsed, ok := tryParse(candidate); ok {
			return parsed, true
		}
	}
	return nil, false
}
