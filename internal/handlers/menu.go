package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/quim/internal/catalog"
	"github.com/example/quim/internal/models"
	"github.com/example/quim/internal/utils"
)

// MenuHandler serves the read-only menu.
type MenuHandler struct {
	catalog catalog.Provider
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(provider catalog.Provider) *MenuHandler {
	return &MenuHandler{catalog: provider}
}

// ListMenu returns paginated products, optionally filtered by category
// or a free-text query.
func (h *MenuHandler) ListMenu(c *fiber.Ctx) error {
	var products []models.Product
	if q := c.Query("q"); q != "" {
		products = h.catalog.Search(q)
	} else {
		products = h.catalog.ListByCategory(c.Query("category"))
	}

	pg := utils.ParsePagination(c)
	total := len(products)
	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products[start:end],
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct returns a single product by slug.
func (h *MenuHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.catalog.GetBySlug(c.Params("slug"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListCategories returns the menu sections.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.catalog.Categories()})
}
