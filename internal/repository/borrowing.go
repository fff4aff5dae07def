package repository

import (
	"context"

	"librisvc/internal/model"
)

// BorrowingRepository defines data access for ledger records. Records are
// never deleted; a return is an Update that flips the stored status.
type BorrowingRepository interface {
	// Create appends a new ledger record.
	Create(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error)

	// FindByID returns a record by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Borrowing, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]model.Borrowing, error)

	// Update replaces the stored record with the given one, matched by ID.
	// Returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error)
}
