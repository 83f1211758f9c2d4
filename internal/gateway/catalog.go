package gateway

import (
	"strings"

	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/domain"
	"github.com/gin-gonic/gin"
)

// ListProducts serves the shop page: ?category= narrows to one category and
// ?q= searches; both may be combined.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	category := domain.Category(strings.TrimSpace(c.Query("category")))
	query, searching := c.GetQuery("q")

	if category != "" && !category.Valid() {
		badRequest(c, "category", "unknown category")
		return
	}

	var (
		products []domain.Product
		err      error
	)
	switch {
	case searching:
		products, err = h.svc.Catalog.Search(ctx, query)
	case category != "":
		products, err = h.svc.Catalog.ListByCategory(ctx, category)
	default:
		products, err = h.svc.Catalog.ListProducts(ctx)
	}
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if searching && category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	ok(c, products)
}

func (h *Handler) FeaturedProducts(c *gin.Context) {
	products, err := h.svc.Catalog.FeaturedProducts(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.svc.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, p)
}

func (h *Handler) RelatedProducts(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.svc.Catalog.GetProduct(ctx, c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	related, err := h.svc.Catalog.RelatedProducts(ctx, p.ID, p.Category)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, related)
}

func (h *Handler) SearchSuggestions(c *gin.Context) {
	suggestions, err := h.svc.Catalog.SearchSuggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	ok(c, suggestions)
}
