package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chatlens/chatlens-backend/internal/api/handlers"
	"github.com/chatlens/chatlens-backend/internal/api/middleware"
	"github.com/chatlens/chatlens-backend/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, svc *services.Services) {
	// Landing page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "ChatLens",
		})
	})

	// API routes
	api := app.Group("/api/v1", middleware.DefaultRateLimit())

	// Manager reports. Each report fans out into many upstream calls, so the
	// group gets a tighter limit than the rest of the API.
	reports := api.Group("/reports", middleware.ReportRateLimit())
	reports.Get("/managers/:id", handlers.GetManagerReport(svc))

	// Raw platform passthroughs (debugging)
	channel := api.Group("/channel")
	channel.Get("/user-chats", handlers.ListUserChats(svc))
	channel.Get("/user-chats/:id/messages", handlers.GetChatMessages(svc))
	channel.Get("/user-chats/:id/sessions", handlers.GetChatSessions(svc))
	channel.Get("/raw/:endpoint", handlers.GetRawEndpoint(svc))

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "chatlens-backend",
		})
	})
}
