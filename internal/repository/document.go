package repository

import (
	"context"

	"librisvc/internal/model"
)

// DocumentRepository defines data access for documents. No business logic
// here, strictly storage operations; availability rules live in the service
// layer.
type DocumentRepository interface {
	// Create inserts a new document record. The caller provides ID and
	// CreatedAt. Returns the stored document.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]model.Document, error)

	// Update replaces the stored document with the given one, matched by ID.
	// Returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID. Returns ErrNotFound if the id is
	// unknown.
	Delete(ctx context.Context, id string) error
}
