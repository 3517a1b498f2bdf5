package ingredient

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned for words outside the measurement vocabulary.
var ErrUnknownUnit = errors.New("unknown unit")

// Units is the closed measurement vocabulary, in match order.
var Units = []string{
	"cup",
	"tablespoon",
	"tbsp",
	"teaspoon",
	"tsp",
	"ounces",
	"oz",
	"lb",
	"pound",
	"gram",
	"g",
	"kilogram",
	"kg",
	"milliliter",
	"millilitre",
	"ml",
}

// ClassifyUnit returns the vocabulary entry a word stands for. A word
// matches an entry written exactly, with a trailing "s", or with a trailing
// ".". Matching is case-sensitive.
func ClassifyUnit(word string) (string, error) {
	for _, unit := range Units {
		if word == unit || word == unit+"s" || word == unit+"." {
			return unit, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, word)
}
