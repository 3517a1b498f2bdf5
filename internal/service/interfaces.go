package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/recipe-extract/backend/internal/model"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

// IRecipeExtractor defines the interface for recipe page extraction
type IRecipeExtractor interface {
	Extract(ctx context.Context, link string) (*types.RecipeExtraction, error)
}

// IIngredientService defines the interface for ingredient text parsing
type IIngredientService interface {
	Parse(ctx context.Context, text string) []types.ParsedIngredient
}

// IImportService defines the interface for saved recipe imports
type IImportService interface {
	Import(ctx context.Context, link string) (*model.RecipeImport, error)
	Get(ctx context.Context, id uuid.UUID) (*model.RecipeImport, error)
	List(ctx context.Context, limit int) ([]*model.RecipeImport, error)
}

var (
	_ IRecipeExtractor   = (*RecipeExtractor)(nil)
	_ IIngredientService = (*IngredientService)(nil)
	_ IImportService     = (*ImportService)(nil)
)
