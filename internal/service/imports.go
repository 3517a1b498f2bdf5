package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-extract/backend/internal/model"
)

// ErrImportNotFound is returned when no import has the requested ID.
var ErrImportNotFound = errors.New("recipe import not found")

const defaultListLimit = 50

// ImportService extracts recipe pages and saves the results
type ImportService struct {
	db        *gorm.DB
	extractor IRecipeExtractor
}

// NewImportService creates a new ImportService instance
func NewImportService(db *gorm.DB, extractor IRecipeExtractor) *ImportService {
	return &ImportService{
		db:        db,
		extractor: extractor,
	}
}

// Import extracts link and stores the result. Extraction errors are returned
// unchanged so callers can still tell ErrLinkUnavailable from ErrBadFormat.
func (s *ImportService) Import(ctx context.Context, link string) (*model.RecipeImport, error) {
	extraction, err := s.extractor.Extract(ctx, link)
	if err != nil {
		return nil, err
	}

	record := model.NewRecipeImport(link, extraction)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to save recipe import: %w", err)
	}
	return record, nil
}

// Get retrieves an import by ID
func (s *ImportService) Get(ctx context.Context, id uuid.UUID) (*model.RecipeImport, error) {
	var record model.RecipeImport
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImportNotFound
		}
		return nil, fmt.Errorf("failed to load recipe import: %w", err)
	}
	return &record, nil
}

// List returns the most recent imports, newest first
func (s *ImportService) List(ctx context.Context, limit int) ([]*model.RecipeImport, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	var records []*model.RecipeImport
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipe imports: %w", err)
	}
	return records, nil
}
