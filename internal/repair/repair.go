// Package repair coerces free-form LLM output into parseable JSON.
// Models wrap payloads in markdown fences, emit Python literals, drop
// closing brackets, and truncate mid-document; this package recovers a
// usable object from all of those failure shapes without ever failing
// hard. A payload that cannot be recovered yields nil.
package repair

import (
	"encoding/json"
	"strings"
)

// ExtractAndRepair locates the JSON payload inside raw model output,
// applies the repair passes, and parses it. It returns nil when no object
// can be recovered. Running it over the serialized form of its own output
// returns an equal object.
func ExtractAndRepair(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// 1. Strip markdown fences, then locate the payload boundaries.
	text := StripFences(raw)
	payload, ok := ExtractPayload(text)
	if !ok {
		return nil
	}

	// 2. Try the payload as-is before touching it. The escape-unwinding
	// pass below is lossy on already-valid JSON.
	if parsed, ok := tryParse(payload); ok {
		return parsed
	}

	// 3. Apply the repair passes and try again.
	repaired := RepairString(payload)
	if parsed, ok := tryParse(repaired); ok {
		return parsed
	}

	// 4. Assume truncation and scan backward for a parseable prefix.
	if parsed, ok := recoverTruncated(repaired); ok {
		return parsed
	}
	return nil
}

// StripFences removes a surrounding markdown code fence, with or without a
// language tag, if one is present.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		head := strings.TrimSpace(trimmed[:nl])
		// "json", "JSON", or empty before the first newline is a fence tag.
		if head == "" || strings.EqualFold(head, "json") {
			trimmed = trimmed[nl+1:]
		}
	} else {
		trimmed = strings.TrimSpace(trimmed)
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// ExtractPayload bounds the payload at the first '{' and the last '}'.
// The second return is false when no such span exists.
func ExtractPayload(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func tryParse(s string) (map[string]any, bool) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
