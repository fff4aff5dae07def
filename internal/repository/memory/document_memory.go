package memory

// Package memory holds the in-memory repository implementations. Each store
// is a map keyed by id guarded by a RWMutex; state lives for the lifetime of
// the process and resets on restart.

import (
	"context"
	"sync"

	"librisvc/internal/model"
	"librisvc/internal/repository"
)

// DocumentMemory is the in-memory implementation of
// repository.DocumentRepository. Safe for concurrent use.
type DocumentMemory struct {
	mu    sync.RWMutex
	docs  map[string]*model.Document
	order []string
}

// NewDocumentMemory creates an empty in-memory document store.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{docs: make(map[string]*model.Document)}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create inserts a new document row and returns a copy of the stored record.
func (r *DocumentMemory) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneDocument(doc)
	r.docs[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneDocument(stored), nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneDocument(d), nil
}

// List returns all documents, newest first.
func (r *DocumentMemory) List(ctx context.Context) ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Document, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if d, ok := r.docs[r.order[i]]; ok {
			items = append(items, *cloneDocument(d))
		}
	}
	return items, nil
}

// Update replaces the stored document, matched by ID.
func (r *DocumentMemory) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[doc.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := cloneDocument(doc)
	r.docs[stored.ID] = stored
	return cloneDocument(stored), nil
}

// Delete removes a document by ID.
func (r *DocumentMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneDocument copies the record so callers never alias store-internal
// state; the borrowers slice is the only reference field.
func cloneDocument(d *model.Document) *model.Document {
	out := *d
	out.Borrowers = append([]string(nil), d.Borrowers...)
	return &out
}
