package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-extract/backend/internal/model"
)

// Migrate creates or updates the tables owned by this service
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(&model.RecipeImport{}); err != nil {
		return fmt.Errorf("failed to migrate recipe imports: %w", err)
	}
	return nil
}
