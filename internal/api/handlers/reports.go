package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chatlens/chatlens-backend/internal/services"
)

// GetManagerReport builds the conversation report for one manager.
// Query parameters: state (opened|closed|snoozed|all), limit, sortOrder
// (asc|desc), date (2006-01-02). Unrecognized state and sortOrder tokens are
// coerced to their defaults rather than rejected.
func GetManagerReport(svc *services.Services) fiber.Handler {
	return func(c *fiber.Ctx) error {
		managerID := c.Params("id")
		if managerID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Manager id is required",
			})
		}

		state := services.NormalizeState(c.Query("state", services.StateAll))
		sortOrder := services.NormalizeSortOrder(c.Query("sortOrder", services.SortDesc))
		date := c.Query("date")

		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit < 0 {
			limit = 50
		}

		report := svc.Report.GetChatsByManagerID(c.Context(), managerID, state, limit, sortOrder, date)
		return c.JSON(report)
	}
}
