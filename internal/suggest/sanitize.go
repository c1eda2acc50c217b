package suggest

import (
	"regexp"
	"strings"
)

// Models sometimes emit internal deliberation before the real answer, or wrap
// it in presentation markup. Reasoning spans are discarded in full, delimiters
// included; stray tags are stripped afterwards.
var (
	reasoningSpanRE = regexp.MustCompile(`(?is)<think>.*?</think>|<reasoning>.*?</reasoning>`)
	markupTagRE     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Sanitize strips reasoning-trace spans and markup-like tags from raw model
// output and trims surrounding whitespace. Pure and total; returns the empty
// string if nothing remains.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	out := raw
	for {
		next := reasoningSpanRE.ReplaceAllString(out, "")
		if next == out {
			break
		}
		out = next
	}
	out = markupTagRE.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
