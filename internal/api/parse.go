package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-extract/backend/internal/service"
	"github.com/pageza/recipe-extract/backend/internal/types"
)

// ParseHandler serves the stateless parsing endpoints
type ParseHandler struct {
	ingredients service.IIngredientService
	extractor   service.IRecipeExtractor
}

func NewParseHandler(ingredients service.IIngredientService, extractor service.IRecipeExtractor) *ParseHandler {
	return &ParseHandler{
		ingredients: ingredients,
		extractor:   extractor,
	}
}

// RegisterRoutes mounts the parsing endpoints on router. rateLimit guards the
// endpoint that fetches remote pages.
func (h *ParseHandler) RegisterRoutes(router gin.IRoutes, rateLimit gin.HandlerFunc) {
	router.GET("/parse_ingredients", h.ParseIngredients)
	router.GET("/parse_recipe_link", rateLimit, h.ParseRecipeLink)
}

// ParseIngredients parses the newline separated ingredient list in ?text=
func (h *ParseHandler) ParseIngredients(c *gin.Context) {
	text, err := decodedQuery(c, "text")
	if err != nil {
		respondError(c, err)
		return
	}

	items := h.ingredients.Parse(c.Request.Context(), text)
	c.JSON(http.StatusOK, types.ParseIngredientsResponse{Items: items})
}

// ParseRecipeLink fetches the page in ?link= and extracts its recipe
func (h *ParseHandler) ParseRecipeLink(c *gin.Context) {
	link, err := decodedQuery(c, "link")
	if err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.extractor.Extract(c.Request.Context(), link)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
