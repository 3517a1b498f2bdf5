package service

import (
	"context"

	"github.com/pageza/recipe-extract/backend/internal/ingredient"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

// IngredientService parses pasted ingredient text
type IngredientService struct{}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService() *IngredientService {
	return &IngredientService{}
}

// Parse strips noise characters from text, splits it into lines and parses
// each non-blank line in order.
func (s *IngredientService) Parse(ctx context.Context, text string) []types.ParsedIngredient {
	lines := ingredient.SplitLines(ingredient.Sanitize(text))
	items := ingredient.ParseLines(ctx, lines)
	countLines(items)
	return items
}
