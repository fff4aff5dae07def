package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"librisvc/internal/service"
)

// ExportHistory streams the borrowing history as a CSV attachment, honoring
// the same ?q= and ?status= filters as the listing.
func ExportHistory(svc service.BorrowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := service.HistoryFilter{
			Query:  c.Query("q"),
			Status: c.Query("status", "all"),
		}
		data, err := svc.ExportCSV(c.UserContext(), f)
		if err != nil {
			return serviceError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, svc.ExportFilename()))
		return c.Send(data)
	}
}
