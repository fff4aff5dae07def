package seed

// Package seed populates the in-memory stores with the demo fixtures the
// front-end ships with, so a fresh process shows a working library. All
// fixtures go through the real services; the invariants hold from the first
// request on.

import (
	"context"
	"fmt"
	"time"

	"librisvc/internal/model"
	"librisvc/internal/service"
)

// Apply creates two users, two documents, and two active borrowings of the
// physical document (leaving 3 of 5 copies available).
func Apply(ctx context.Context, inv service.InventoryService, usr service.UserService, brw service.BorrowingService) error {
	john, err := usr.Add(ctx, service.AddUserInput{
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  model.RoleTeacher,
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	sarah, err := usr.Add(ctx, service.AddUserInput{
		Name:      "Sarah Smith",
		Email:     "sarah@example.com",
		Role:      model.RoleStudent,
		Class:     "5A",
		StudentID: "2024001",
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	textbook, err := inv.Add(ctx, service.AddDocumentInput{
		Name:     "Mathematics Textbook Grade 5",
		Kind:     model.DocumentPhysical,
		Category: model.CategoryAcademic,
		Quantity: 5,
	})
	if err != nil {
		return fmt.Errorf("seed document: %w", err)
	}
	if _, err := inv.Add(ctx, service.AddDocumentInput{
		Name:     "School Curriculum 2024",
		Kind:     model.DocumentDigital,
		Category: model.CategoryAcademic,
		URL:      "https://example.com/curriculum.pdf",
		FileType: "PDF",
	}); err != nil {
		return fmt.Errorf("seed document: %w", err)
	}

	now := time.Now().UTC()
	for _, u := range []*model.User{john, sarah} {
		if _, err := brw.Create(ctx, service.CreateBorrowingInput{
			UserID:     u.ID,
			DocumentID: textbook.ID,
			BorrowDate: now,
			DueDate:    now.AddDate(0, 0, 14),
		}); err != nil {
			return fmt.Errorf("seed borrowing: %w", err)
		}
	}
	return nil
}
