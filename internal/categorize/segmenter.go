package categorize

import (
	"strings"
	"unicode"
)

// SegmentLines splits raw OCR text into candidate item lines: split on line
// breaks, trim, drop lines with fewer than minLineLength non-whitespace
// characters. Order is preserved — it reflects reading order in the source.
func SegmentLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if nonWhitespaceLen(line) < minLineLength {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
