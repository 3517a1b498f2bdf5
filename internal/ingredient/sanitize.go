package ingredient

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitize drops every rune that is neither ASCII nor a letter or number.
// Text is NFC-normalized first so decomposed accents survive as letters.
func Sanitize(text string) string {
	text = norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, text)
}

// SplitLines splits text on newlines and drops blank lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
