package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/middleware"
	"github.com/example/profile/internal/models"
	"github.com/example/profile/internal/services"
	"github.com/example/profile/internal/store"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	auth     *services.AuthService
	device   *services.DeviceService
	telegram *services.TelegramService
	logins   *store.LoginLog
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *services.AuthService, device *services.DeviceService, telegram *services.TelegramService, logins *store.LoginLog) *AuthHandler {
	return &AuthHandler{auth: auth, device: device, telegram: telegram, logins: logins}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin credential pair and issues a session
// token. Device metadata is collected and forwarded to the admin chat
// in the background; notification failures never affect the response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	sess, token, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	device := h.device.Describe(c.IP(), c.Get("X-Forwarded-For"), c.Get("X-Real-IP"), c.Get("User-Agent"))
	go h.recordLogin(sess, device)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"username":  sess.Username,
			"sessionId": sess.ID,
			"expiresAt": sess.ExpiresAt,
		},
		"device": device,
	})
}

// Verify acknowledges a valid bearer token. The middleware has
// already rejected everything else.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"username":  sess.Username,
			"expiresAt": sess.ExpiresAt,
		},
	})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Revoke(middleware.CurrentToken(c))
	return c.JSON(fiber.Map{"success": true})
}

// recordLogin appends the audit entry and notifies the admin chat.
// Both are best-effort.
func (h *AuthHandler) recordLogin(sess models.Session, device models.DeviceInfo) {
	if err := h.logins.Append(models.LoginRecord{
		Username: sess.Username,
		IP:       device.IP,
		Device:   device.Device,
		Browser:  device.Browser,
		OS:       device.OS,
	}); err != nil {
		log.Printf("login log append failed: %v", err)
	}

	if err := h.telegram.NotifyLogin(services.LoginNotification{
		Username: sess.Username,
		Device:   device,
		Time:     sess.IssuedAt,
	}); err != nil {
		log.Printf("login notification failed: %v", err)
	}
}
