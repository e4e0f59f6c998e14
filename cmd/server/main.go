package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"github.com/chatlens/chatlens-backend/internal/api"
	"github.com/chatlens/chatlens-backend/internal/channelio"
	"github.com/chatlens/chatlens-backend/internal/config"
	"github.com/chatlens/chatlens-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Platform client (credentials come from config/env, held for the process lifetime)
	channelClient, err := channelio.NewClient(cfg.Channel)
	if err != nil {
		log.Fatal("Failed to create channel client:", err)
	}

	// Application logger
	appLogger := logrus.New()
	appLogger.SetLevel(logrus.InfoLevel)
	if os.Getenv("CHATLENS_DEBUG") != "" {
		appLogger.SetLevel(logrus.DebugLevel)
	}

	// Initialize services
	svc := services.NewServices(cfg, channelClient, appLogger)

	// Initialize Fiber app
	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		AppName:      "ChatLens Backend",
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: getOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	// Setup routes
	api.SetupRoutes(app, svc)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Infof("ChatLens Backend starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func getOrigins() string {
	origins := os.Getenv("CHATLENS_CORS_ORIGINS")
	if origins == "" {
		return "http://localhost:5010,http://localhost:5173"
	}
	return origins
}
