package editor

import "strings"

// SplitAbout turns raw multi-line "about" text into the ordered list of
// non-empty, trimmed lines.
func SplitAbout(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
