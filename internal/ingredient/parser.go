// Package ingredient turns free-text ingredient lines such as
// "3 pounds chicken breast" into amount, unit and name.
package ingredient

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/recipe-extract/backend/internal/logger"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

// ParseLine splits one ingredient line. It never fails: whenever the line
// cannot be segmented the result carries the trimmed line as its name and
// no amount or unit.
func ParseLine(line string) types.ParsedIngredient {
	line = strings.TrimSpace(line)
	fallback := types.ParsedIngredient{Name: line}

	tok, ok := tokenize(line)
	if !ok || tok.Word == "" {
		return fallback
	}

	var amount *float64
	if v, err := tok.Numeral.Amount(); err == nil {
		amount = &v
	}

	if _, err := ClassifyUnit(tok.Word); err == nil {
		unit := tok.Word
		return types.ParsedIngredient{
			Amount: amount,
			Unit:   &unit,
			Name:   tok.Remainder,
		}
	}

	// Neither an amount nor a unit: nothing was segmented.
	if amount == nil {
		return fallback
	}

	name := tok.Word
	if tok.Remainder != "" {
		name += " " + tok.Remainder
	}
	return types.ParsedIngredient{
		Amount: amount,
		Name:   name,
	}
}

// ParseLines parses every non-blank line, keeping input order.
func ParseLines(ctx context.Context, lines []string) []types.ParsedIngredient {
	log := logger.FromContext(ctx)

	parsed := make([]types.ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		item := ParseLine(line)
		if IsFallback(item) {
			log.Debug("ingredient line not segmented", zap.String("line", item.Name))
		}
		parsed = append(parsed, item)
	}
	return parsed
}

// IsFallback reports whether p is the raw-text result of an unsegmented line.
func IsFallback(p types.ParsedIngredient) bool {
	return p.Amount == nil && p.Unit == nil
}
