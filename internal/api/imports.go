package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-extract/backend/internal/model"
	"github.com/pageza/recipe-extract/backend/internal/service"
)

// ImportHandler serves saved recipe imports
type ImportHandler struct {
	imports service.IImportService
}

func NewImportHandler(imports service.IImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

func (h *ImportHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	imports := router.Group("/imports")
	{
		imports.POST("", rateLimit, h.CreateImport)
		imports.GET("", h.ListImports)
		imports.GET("/:id", h.GetImport)
	}
}

func (h *ImportHandler) CreateImport(c *gin.Context) {
	link, err := decodedQuery(c, "link")
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.imports.Import(c.Request.Context(), link)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ImportHandler) GetImport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid import ID"})
		return
	}

	record, err := h.imports.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ImportHandler) ListImports(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.imports.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if records == nil {
		records = []*model.RecipeImport{}
	}
	c.JSON(http.StatusOK, gin.H{"imports": records})
}
