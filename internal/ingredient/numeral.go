package ingredient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoAmount is returned when a line carries no numeral at all.
	ErrNoAmount = errors.New("no amount")
	// ErrMalformed is returned when a numeral is present but cannot be read,
	// for example a zero or missing denominator.
	ErrMalformed = errors.New("malformed amount")
)

// fractionDigits maps vulgar fraction glyphs to the decimal digits appended
// after the integer part.
var fractionDigits = map[string]string{
	"½": "5",
	"⅔": "67",
	"⅓": "33",
	"¼": "25",
}

// Numeral is the leading numeral block of an ingredient line.
//
// Integer is a run of ASCII digits, Separator one of " ", ".", "/" or empty,
// and Fraction either digits, "<digits>/<digits>" or a vulgar fraction glyph.
type Numeral struct {
	Integer   string
	Separator string
	Fraction  string
}

// IsEmpty reports whether the block holds nothing but optional whitespace.
func (n Numeral) IsEmpty() bool {
	return n.Integer == "" && n.Fraction == "" && strings.TrimSpace(n.Separator) == ""
}

// String returns the block as it appeared in the line.
func (n Numeral) String() string {
	return n.Integer + n.Separator + n.Fraction
}

// Amount converts the block into a decimal amount.
func (n Numeral) Amount() (float64, error) {
	if n.IsEmpty() {
		return 0, ErrNoAmount
	}
	if n.Integer == "" && n.Fraction == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, n.String())
	}

	if n.Separator == "/" {
		return divide(n.Integer, n.Fraction)
	}

	// "1 1/2" reads as one and a half rather than a decimal composition.
	if num, den, ok := strings.Cut(n.Fraction, "/"); ok {
		part, err := divide(num, den)
		if err != nil {
			return 0, err
		}
		whole := 0.0
		if n.Integer != "" {
			v, err := strconv.ParseFloat(n.Integer, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrMalformed, n.String())
			}
			whole = v
		}
		return whole + part, nil
	}

	integer := n.Integer
	if integer == "" {
		integer = "0"
	}
	fraction := "0"
	if digits, ok := fractionDigits[n.Fraction]; ok {
		fraction = digits
	} else if n.Fraction != "" {
		fraction = n.Fraction
	}

	v, err := strconv.ParseFloat(integer+"."+fraction, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, n.String())
	}
	return v, nil
}

func divide(numerator, denominator string) (float64, error) {
	if !isDigits(numerator) || !isDigits(denominator) {
		return 0, fmt.Errorf("%w: %q over %q", ErrMalformed, numerator, denominator)
	}
	num, err := strconv.ParseFloat(numerator, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	den, err := strconv.ParseFloat(denominator, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if den == 0 {
		return 0, fmt.Errorf("%w: zero denominator", ErrMalformed)
	}
	return num / den, nil
}

// NormalizeNumeral reads a standalone numeral token such as "2", "1/2",
// "1½" or "1 ⅓". Trailing text that is not part of the numeral is rejected.
func NormalizeNumeral(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrNoAmount
	}
	n, rest := scanNumeral(token)
	if rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, token)
	}
	return n.Amount()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
