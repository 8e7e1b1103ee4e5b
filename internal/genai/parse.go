package genai

import "strings"

// SplitManual splits raw model output into a device name and a manual body.
// The model is instructed to put the device name alone on the first line,
// so the first line is taken as the name unconditionally.
//
// When the output has no line break at all, the entire trimmed text is
// returned as both the name and the body; that degenerate shape is expected
// by callers and must not be "fixed" here.
//
// Bodies that survive a real split are normalized to start with "1. ":
// the model sometimes swallows the first list marker when the name is
// stripped off, so a literal leading "1. " is removed and re-prepended.
// This is a best-effort heuristic, not a parser; it does not try to handle
// other numbering styles.
func SplitManual(raw string) (device, body string) {
	raw = strings.TrimSpace(raw)

	name, rest, found := strings.Cut(raw, "\n")
	device = strings.TrimSpace(name)
	if !found {
		return device, raw
	}

	body = strings.TrimSpace(rest)
	if body == "" {
		return device, raw
	}
	body = "1. " + strings.TrimSpace(strings.TrimPrefix(body, "1. "))
	return device, body
}
