package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/store"
)

// ServicesHandler manages the offered-services collection.
type ServicesHandler struct {
	store *store.Store
}

// NewServicesHandler constructs ServicesHandler.
func NewServicesHandler(st *store.Store) *ServicesHandler {
	return &ServicesHandler{store: st}
}

// ListServices returns the full list ordered by the order field
// (public endpoint).
func (h *ServicesHandler) ListServices(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	items := doc.Services
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// ReplaceServices overwrites the collection wholesale and echoes it
// back (admin endpoint).
func (h *ServicesHandler) ReplaceServices(c *fiber.Ctx) error {
	var items []models.Service
	if err := c.BodyParser(&items); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	stored, err := h.store.ReplaceServices(items)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stored,
	})
}
