package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/chatlens/chatlens-backend/internal/services"
)

// Debug passthroughs to the remote platform API. These return the platform's
// JSON unmodified and exist for inspecting raw payloads while tuning reports.

// ListUserChats proxies the first chat-listing page.
func ListUserChats(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := url.Values{}
		query.Set("sortOrder", services.NormalizeSortOrder(c.Query("sortOrder", services.SortDesc)))
		query.Set("limit", c.Query("limit", "100"))

		raw, err := svc.Channel.FetchRaw(c.Context(), "user-chats", query)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(raw)
	}
}

// GetChatMessages proxies a chat's message history.
func GetChatMessages(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID := c.Params("id")

		page, err := svc.Channel.FetchMessages(c.Context(), chatID, 25)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(page)
	}
}

// GetChatSessions proxies a chat's session records.
func GetChatSessions(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chatID := c.Params("id")

		raw, err := svc.Channel.FetchSessions(c.Context(), chatID)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(raw)
	}
}

// GetRawEndpoint proxies a single-segment read-only endpoint, e.g. managers.
func GetRawEndpoint(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		endpoint := c.Params("endpoint")

		raw, err := svc.Channel.FetchRaw(c.Context(), endpoint, nil)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(raw)
	}
}
