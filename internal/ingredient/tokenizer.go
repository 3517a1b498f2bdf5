package ingredient

import "strings"

var fractionGlyphs = []string{"½", "⅔", "⅓", "¼"}

// lineTokens is one ingredient line split into its leading numeral block, the
// word after it and everything that follows.
type lineTokens struct {
	Numeral   Numeral
	Word      string
	Remainder string
}

// tokenize segments a trimmed line in small steps:
// numeral run, separator, second run, one optional space, a lowercase word,
// one optional space, remainder. A line spanning several lines is rejected.
func tokenize(line string) (lineTokens, bool) {
	if strings.Contains(line, "\n") {
		return lineTokens{}, false
	}

	numeral, rest := scanNumeral(line)
	rest = strings.TrimPrefix(rest, " ")
	word, rest := scanWord(rest)
	rest = strings.TrimPrefix(rest, " ")

	return lineTokens{
		Numeral:   numeral,
		Word:      word,
		Remainder: rest,
	}, true
}

// scanNumeral consumes the numeral block at the start of s and returns it
// with the unconsumed text.
func scanNumeral(s string) (Numeral, string) {
	var n Numeral

	n.Integer, s = scanDigits(s)

	if s != "" && (s[0] == ' ' || s[0] == '.' || s[0] == '/') {
		n.Separator, s = s[:1], s[1:]
	}

	n.Fraction, s = scanFraction(s)
	return n, s
}

// scanFraction tries, in order: "<digits>/<digits>" (either side may be
// empty), a digit run, a vulgar fraction glyph.
func scanFraction(s string) (string, string) {
	head, rest := scanDigits(s)
	if strings.HasPrefix(rest, "/") {
		tail, after := scanDigits(rest[1:])
		return head + "/" + tail, after
	}
	if head != "" {
		return head, rest
	}
	for _, glyph := range fractionGlyphs {
		if strings.HasPrefix(s, glyph) {
			return glyph, s[len(glyph):]
		}
	}
	return "", s
}

func scanDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func scanWord(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}
	return s[:i], s[i:]
}
