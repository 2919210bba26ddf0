package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/store"
)

// ProjectsHandler manages the projects collection.
type ProjectsHandler struct {
	store *store.Store
}

// NewProjectsHandler constructs ProjectsHandler.
func NewProjectsHandler(st *store.Store) *ProjectsHandler {
	return &ProjectsHandler{store: st}
}

// ListProjects returns the full list ordered by the order field, ties
// keeping their stored position (public endpoint).
func (h *ProjectsHandler) ListProjects(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	items := doc.Projects
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// ReplaceProjects overwrites the collection wholesale with the
// supplied list and echoes it back (admin endpoint).
func (h *ProjectsHandler) ReplaceProjects(c *fiber.Ctx) error {
	var items []models.Project
	if err := c.BodyParser(&items); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	stored, err := h.store.ReplaceProjects(items)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stored,
	})
}
