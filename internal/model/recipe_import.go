package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-extract/backend/internal/types"
)

// IngredientList stores parsed ingredients in a JSONB column
type IngredientList []types.ParsedIngredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]types.ParsedIngredient(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredient list type %T", value)
	}

	return json.Unmarshal(bytes, l)
}

// RecipeImport is a recipe extracted from a web page and saved for later use
type RecipeImport struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	SourceURL        string         `gorm:"type:text;not null;index" json:"source_url"`
	Name             *string        `gorm:"size:255" json:"name"`
	PrepTimeMinutes  *int           `json:"prep_time_minutes"`
	TotalTimeMinutes *int           `json:"total_time_minutes"`
	Instructions     *string        `gorm:"type:text" json:"instructions"`
	ImageURL         *string        `gorm:"type:text" json:"image_url"`
	Ingredients      IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
}

// BeforeCreate assigns an ID when none is set
func (r *RecipeImport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewRecipeImport builds an import record from an extraction of link
func NewRecipeImport(link string, e *types.RecipeExtraction) *RecipeImport {
	return &RecipeImport{
		SourceURL:        link,
		Name:             e.Name,
		PrepTimeMinutes:  e.PrepTimeMinutes,
		TotalTimeMinutes: e.TotalTimeMinutes,
		Instructions:     e.Instructions,
		ImageURL:         e.Image,
		Ingredients:      IngredientList(e.Ingredients),
	}
}
