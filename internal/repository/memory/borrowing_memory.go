package memory

import (
	"context"
	"sync"

	"librisvc/internal/model"
	"librisvc/internal/repository"
)

// BorrowingMemory is the in-memory implementation of
// repository.BorrowingRepository. Records are append-only plus in-place
// updates; nothing is ever deleted.
type BorrowingMemory struct {
	mu    sync.RWMutex
	recs  map[string]*model.Borrowing
	order []string
}

// NewBorrowingMemory creates an empty in-memory ledger.
func NewBorrowingMemory() *BorrowingMemory {
	return &BorrowingMemory{recs: make(map[string]*model.Borrowing)}
}

var _ repository.BorrowingRepository = (*BorrowingMemory)(nil)

// Create appends a new ledger record.
func (r *BorrowingMemory) Create(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBorrowing(rec)
	r.recs[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneBorrowing(stored), nil
}

// FindByID fetches a single record by its ID.
func (r *BorrowingMemory) FindByID(ctx context.Context, id string) (*model.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneBorrowing(rec), nil
}

// List returns all records, newest first.
func (r *BorrowingMemory) List(ctx context.Context) ([]model.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Borrowing, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if rec, ok := r.recs[r.order[i]]; ok {
			items = append(items, *cloneBorrowing(rec))
		}
	}
	return items, nil
}

// Update replaces the stored record, matched by ID.
func (r *BorrowingMemory) Update(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recs[rec.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := cloneBorrowing(rec)
	r.recs[stored.ID] = stored
	return cloneBorrowing(stored), nil
}

func cloneBorrowing(rec *model.Borrowing) *model.Borrowing {
	out := *rec
	if rec.ReturnDate != nil {
		t := *rec.ReturnDate
		out.ReturnDate = &t
	}
	if rec.LateFee != nil {
		f := *rec.LateFee
		out.LateFee = &f
	}
	return &out
}
