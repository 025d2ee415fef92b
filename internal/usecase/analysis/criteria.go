package analysis

import (
	"encoding/json"
	"regexp"
	"strings"
)

// parseCriteria turns the free-form criteria stage output into an ordered
// list of criteria strings. Parsing is best-effort: a strict JSON array
// first, then an array embedded in surrounding prose, then a markered list.
// When nothing matches, the raw text is surfaced as a single-element list —
// partial results are never dropped.
func parseCriteria(raw string) []string {
	text := stripCodeFence(raw)

	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		if items, ok := decodeStringArray(text); ok {
			return items
		}
	}

	// The array may be wrapped in prose or carry escaped quotes.
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			fragment := strings.ReplaceAll(text[start:end+1], `\"`, `"`)
			if items, ok := decodeStringArray(fragment); ok {
				return items
			}
		}
	}

	if items := splitMarkeredLines(text); len(items) >= 2 {
		return items
	}

	return []string{strings.TrimSpace(raw)}
}

func decodeStringArray(text string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

var listMarkerRe = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+`)

// splitMarkeredLines collects lines that look like list items, stripping
// markers, surrounding quotes and trailing commas.
func splitMarkeredLines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !listMarkerRe.MatchString(trimmed) {
			continue
		}

		item := listMarkerRe.ReplaceAllString(trimmed, "")
		item = strings.TrimSuffix(item, ",")
		item = strings.Trim(item, `"`)
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return trimmed
	}
	trimmed = trimmed[idx+1:]

	if end := strings.LastIndex(trimmed, "```"); end >= 0 {
		trimmed = trimmed[:end]
	}

	return strings.TrimSpace(trimmed)
}
