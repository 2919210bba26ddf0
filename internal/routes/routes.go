package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/profile/internal/config"
	"github.com/example/profile/internal/handlers"
	"github.com/example/profile/internal/middleware"
	"github.com/example/profile/internal/services"
	"github.com/example/profile/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, logins *store.LoginLog, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	deviceService := services.NewDeviceService(cfg.IPLookupURL)
	authService := services.NewAuthService(services.StaticCredentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, cfg.JWTSecret, cfg.SessionTTL)

	authHandler := handlers.NewAuthHandler(authService, deviceService, telegramService, logins)
	settingsHandler := handlers.NewSettingsHandler(st)
	projectsHandler := handlers.NewProjectsHandler(st)
	servicesHandler := handlers.NewServicesHandler(st)
	feedbackHandler := handlers.NewFeedbackHandler(st)
	adminHandler := handlers.NewAdminHandler(st, logins)

	requireAuth := middleware.AuthMiddleware(authService)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/verify", requireAuth, authHandler.Verify)
	auth.Post("/logout", requireAuth, authHandler.Logout)

	// Content routes: reads are public, writes require a session
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", requireAuth, settingsHandler.UpdateSettings)

	api.Get("/projects", projectsHandler.ListProjects)
	api.Put("/projects", requireAuth, projectsHandler.ReplaceProjects)

	api.Get("/services", servicesHandler.ListServices)
	api.Put("/services", requireAuth, servicesHandler.ReplaceServices)

	api.Get("/feedbacks", feedbackHandler.ListVisible)
	api.Post("/feedbacks", feedbackHandler.Submit)
	api.Put("/feedbacks", requireAuth, feedbackHandler.Update)
	api.Delete("/feedbacks", requireAuth, feedbackHandler.Delete)

	// Admin dashboard
	admin := api.Group("/admin", requireAuth)
	admin.Get("/feedbacks", feedbackHandler.ListAll)
	admin.Get("/logins", adminHandler.ListLogins)
	admin.Get("/stats", adminHandler.DashboardStats)
}
