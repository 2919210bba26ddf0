package handlers

import (
	"bytes"
	"encoding/json"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/store"
)

// FeedbackHandler manages visitor feedback: public submission and
// display plus admin moderation.
type FeedbackHandler struct {
	store *store.Store
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: st}
}

var feedbackCategories = map[string]bool{
	models.FeedbackCategoryGeneral:    true,
	models.FeedbackCategoryProject:    true,
	models.FeedbackCategoryService:    true,
	models.FeedbackCategorySuggestion: true,
}

// ListVisible returns only feedbacks approved for public display.
// Visible is the single source of truth here; status is moderation
// metadata and is not consulted.
func (h *FeedbackHandler) ListVisible(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	visible := make([]models.Feedback, 0, len(doc.Feedbacks))
	for _, fb := range doc.Feedbacks {
		if fb.Visible {
			visible = append(visible, fb)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    visible,
	})
}

// ListAll returns every feedback, hidden ones included (admin
// endpoint).
func (h *FeedbackHandler) ListAll(c *fiber.Ctx) error {
	doc, err := h.store.Read()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    doc.Feedbacks,
	})
}

type submitFeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Category string `json:"category"`
}

// Submit accepts a public feedback submission. Name, email, and
// message are required; rating and category are normalized. New
// entries start hidden with status "new" until moderated.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req submitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and message are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	if req.Rating == 0 {
		req.Rating = 5
	}
	if req.Rating < 1 {
		req.Rating = 1
	}
	if req.Rating > 5 {
		req.Rating = 5
	}
	if !feedbackCategories[req.Category] {
		req.Category = models.FeedbackCategoryGeneral
	}

	created, err := h.store.AddFeedback(models.Feedback{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		Rating:   req.Rating,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    created,
	})
}

// Update handles the moderation endpoint, which accepts three body
// shapes: an object carrying "id" patches that single entry, a bare
// array replaces the collection wholesale, and {"feedbacks": [...]}
// does the same. Patching an unknown id is a silent no-op. Always
// echoes the resulting list.
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())

	if bytes.HasPrefix(body, []byte("[")) {
		var items []models.Feedback
		if err := json.Unmarshal(body, &items); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		stored, err := h.store.ReplaceFeedbacks(items)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": stored})
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if raw, ok := fields["feedbacks"]; ok {
		var items []models.Feedback
		if err := json.Unmarshal(raw, &items); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid feedbacks list")
		}
		stored, err := h.store.ReplaceFeedbacks(items)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": stored})
	}

	rawID, ok := fields["id"]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "id or feedbacks list required")
	}
	var id string
	if err := json.Unmarshal(rawID, &id); err != nil || id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	delete(fields, "id")

	if _, err := h.store.UpdateItemByID(store.CollectionFeedbacks, id, fields); err != nil {
		return err
	}

	doc, err := h.store.Read()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": doc.Feedbacks})
}

// Delete removes one feedback by the id query parameter and echoes
// the remaining list.
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing id")
	}

	found, err := h.store.DeleteItemByID(store.CollectionFeedbacks, id)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "feedback not found")
	}

	doc, err := h.store.Read()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": doc.Feedbacks})
}
