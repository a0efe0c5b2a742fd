package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aoneretail/footwear-pos/internal/application/service"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/response"
)

// CatalogHandler handles the cascading dropdowns and product lookup
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// region identifies the widget the response is destined for, so a reply that
// lost the race against a newer request for the same widget can be rejected.
func region(c *gin.Context, fallback string) string {
	if r := c.Query("region"); r != "" {
		return r
	}
	return fallback
}

// Categories lists the categories under a brand
func (h *CatalogHandler) Categories(c *gin.Context) {
	opts, err := h.catalogService.Categories(
		c.Request.Context(), region(c, "categories"), c.Query("brand_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", opts)
}

// Sections lists the sections under a category
func (h *CatalogHandler) Sections(c *gin.Context) {
	opts, err := h.catalogService.Sections(
		c.Request.Context(), region(c, "sections"), c.Query("category_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sections retrieved successfully", opts)
}

// Sizes lists the sizes under a section
func (h *CatalogHandler) Sizes(c *gin.Context) {
	opts, err := h.catalogService.Sizes(
		c.Request.Context(), region(c, "sizes"), c.Query("section_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sizes retrieved successfully", opts)
}

// Products returns the typed product lookup for a hierarchy selection
func (h *CatalogHandler) Products(c *gin.Context) {
	lookup, err := h.catalogService.Lookup(c.Request.Context(), upstream.ProductQuery{
		BrandID:    c.Query("brand_id"),
		CategoryID: c.Query("category_id"),
		SectionID:  c.Query("section_id"),
		SizeID:     c.Query("size_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", lookup)
}
