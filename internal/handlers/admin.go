package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/store"
)

// AdminHandler manages admin-only dashboard endpoints.
type AdminHandler struct {
	store  *store.Store
	logins *store.LoginLog
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store, logins *store.LoginLog) *AdminHandler {
	return &AdminHandler{store: st, logins: logins}
}

// DashboardStats returns aggregate content counts for the admin
// dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	visibleProjects := 0
	for _, p := range doc.Projects {
		if p.Visible {
			visibleProjects++
		}
	}

	visibleServices := 0
	for _, s := range doc.Services {
		if s.Visible {
			visibleServices++
		}
	}

	feedbacksByStatus := make(map[string]int)
	for _, fb := range doc.Feedbacks {
		feedbacksByStatus[fb.Status]++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_projects":      len(doc.Projects),
			"visible_projects":    visibleProjects,
			"total_services":      len(doc.Services),
			"visible_services":    visibleServices,
			"total_feedbacks":     len(doc.Feedbacks),
			"feedbacks_by_status": feedbacksByStatus,
			"last_updated":        doc.LastUpdated,
		},
	})
}

// ListLogins returns the login audit log, newest first.
func (h *AdminHandler) ListLogins(c *fiber.Ctx) error {
	entries, err := h.logins.List()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}
