package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipe-extract/backend/internal/fetch"
	"github.com/pageza/recipe-extract/backend/internal/ingredient"
	"github.com/pageza/recipe-extract/backend/internal/jsonld"
	"github.com/pageza/recipe-extract/backend/internal/logger"
	"github.com/pageza/recipe-extract/backend/internal/metrics"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

var (
	// ErrLinkUnavailable means the page could not be fetched. Retrying later may help.
	ErrLinkUnavailable = errors.New("link unavailable")
	// ErrBadFormat means the page holds no recognizable recipe data.
	ErrBadFormat = errors.New("page has no recognizable recipe data")
)

// RecipeExtractor turns recipe page URLs into RecipeExtraction values
type RecipeExtractor struct {
	fetcher fetch.Fetcher
	repair  bool
}

// NewRecipeExtractor creates a new RecipeExtractor instance. With repair set,
// malformed JSON-LD is run through jsonrepair before being rejected.
func NewRecipeExtractor(fetcher fetch.Fetcher, repair bool) *RecipeExtractor {
	return &RecipeExtractor{
		fetcher: fetcher,
		repair:  repair,
	}
}

// Extract fetches link and extracts its recipe. Nothing is cached: every
// call fetches and parses the page again.
func (e *RecipeExtractor) Extract(ctx context.Context, link string) (*types.RecipeExtraction, error) {
	log := logger.FromContext(ctx).With(zap.String("link", link))
	start := time.Now()
	defer func() {
		metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := e.fetcher.Get(ctx, link)
	if err != nil {
		if errors.Is(err, fetch.ErrUnreadableBody) || errors.Is(err, fetch.ErrTooLarge) {
			metrics.ExtractionsTotal.WithLabelValues(metrics.OutcomeBadFormat).Inc()
			log.Info("recipe page body unusable", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		metrics.ExtractionsTotal.WithLabelValues(metrics.OutcomeUnavailable).Inc()
		log.Info("recipe page unavailable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrLinkUnavailable, err)
	}

	recipe, err := ExtractFromHTML(ctx, body, e.repair)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(metrics.OutcomeBadFormat).Inc()
		log.Info("recipe page not parseable", zap.Error(err))
		return nil, err
	}

	metrics.ExtractionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	log.Debug("recipe extracted", zap.Int("ingredients", len(recipe.Ingredients)))
	return recipe, nil
}

// ExtractFromHTML runs the structured-data locator and every field extractor
// over an already fetched page.
func ExtractFromHTML(ctx context.Context, body []byte, repair bool) (*types.RecipeExtraction, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrBadFormat)
	}

	obj, err := jsonld.Locate(body, jsonld.WithRepair(repair))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	ingredients := ingredient.ParseLines(ctx, obj.IngredientLines())
	countLines(ingredients)

	return &types.RecipeExtraction{
		Name:             obj.Name(),
		PrepTimeMinutes:  obj.PrepTime(),
		TotalTimeMinutes: obj.TotalTime(),
		Instructions:     obj.Instructions(),
		Image:            obj.Image(),
		Ingredients:      ingredients,
	}, nil
}

func countLines(items []types.ParsedIngredient) {
	for _, item := range items {
		result := "segmented"
		if ingredient.IsFallback(item) {
			result = "fallback"
		}
		metrics.IngredientLinesTotal.WithLabelValues(result).Inc()
	}
}
