package repository

import (
	"context"

	"librisvc/internal/model"
)

// UserRepository defines data access for library accounts.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)

	// Update replaces the stored user with the given one, matched by ID.
	// Returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, u *model.User) (*model.User, error)

	// Delete removes a user by ID. Returns ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error
}
