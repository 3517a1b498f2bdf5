package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-extract/backend/internal/model"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

// MockRecipeExtractor is a mock implementation of the recipe extractor
type MockRecipeExtractor struct {
	mock.Mock
}

func (m *MockRecipeExtractor) Extract(ctx context.Context, link string) (*types.RecipeExtraction, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeExtraction), args.Error(1)
}

// MockImportService is a mock implementation of the import service
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, link string) (*model.RecipeImport, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecipeImport), args.Error(1)
}

func (m *MockImportService) Get(ctx context.Context, id uuid.UUID) (*model.RecipeImport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecipeImport), args.Error(1)
}

func (m *MockImportService) List(ctx context.Context, limit int) ([]*model.RecipeImport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RecipeImport), args.Error(1)
}
