package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"librisvc/internal/service"
)

// dashboardSummary is the front page's at-a-glance numbers.
type dashboardSummary struct {
	TotalDocuments   int `json:"total_documents"`
	TotalUsers       int `json:"total_users"`
	ActiveBorrowings int `json:"active_borrowings"`
	OverdueCount     int `json:"overdue_count"`
}

// Dashboard aggregates counts from the three services.
func Dashboard(inv service.InventoryService, brw service.BorrowingService, usr service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		docs, err := inv.List(ctx)
		if err != nil {
			return serviceError(c, err)
		}
		users, err := usr.List(ctx)
		if err != nil {
			return serviceError(c, err)
		}
		active, err := brw.List(ctx, service.HistoryFilter{Status: "active"})
		if err != nil {
			return serviceError(c, err)
		}

		now := time.Now().UTC()
		overdue := 0
		for _, rec := range active {
			if service.Overdue(rec, now) {
				overdue++
			}
		}

		return c.JSON(dashboardSummary{
			TotalDocuments:   len(docs),
			TotalUsers:       len(users),
			ActiveBorrowings: len(active),
			OverdueCount:     overdue,
		})
	}
}
