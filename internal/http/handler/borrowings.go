package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"librisvc/internal/service"
)

// createBorrowingRequest carries dates as strings so the front-end can send
// plain calendar dates ("2024-03-29") or RFC 3339 timestamps.
type createBorrowingRequest struct {
	UserID     string `json:"user_id"`
	Class      string `json:"class"`
	DocumentID string `json:"document_id"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ListBorrowings returns ledger records filtered by ?q= and ?status=.
func ListBorrowings(svc service.BorrowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := service.HistoryFilter{
			Query:  c.Query("q"),
			Status: c.Query("status", "all"),
		}
		recs, err := svc.List(c.UserContext(), f)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": recs, "total": len(recs)})
	}
}

// CreateBorrowing opens a borrow transaction.
func CreateBorrowing(svc service.BorrowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createBorrowingRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		in := service.CreateBorrowingInput{
			UserID:     req.UserID,
			Class:      req.Class,
			DocumentID: req.DocumentID,
		}
		if req.BorrowDate != "" {
			t, err := parseDate(req.BorrowDate)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid borrow date")
			}
			in.BorrowDate = t
		}
		if req.DueDate == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "due date is required")
		}
		t, err := parseDate(req.DueDate)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid due date")
		}
		in.DueDate = t

		rec, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ReturnBorrowing closes a borrowing exactly once.
func ReturnBorrowing(svc service.BorrowingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Return(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rec)
	}
}
