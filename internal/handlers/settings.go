package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/store"
)

// SettingsHandler manages the singleton site settings record.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// GetSettings returns the current settings record (public endpoint).
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    doc.Settings,
	})
}

// UpdateSettings shallow-merges the request body into the settings
// record and echoes the merged result (admin endpoint).
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &patch); err != nil || patch == nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	merged, err := h.store.UpdateSettings(patch)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    merged,
	})
}
