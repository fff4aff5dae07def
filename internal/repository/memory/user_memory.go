package memory

import (
	"context"
	"strings"
	"sync"

	"librisvc/internal/model"
	"librisvc/internal/repository"
)

// UserMemory is the in-memory implementation of repository.UserRepository.
type UserMemory struct {
	mu    sync.RWMutex
	users map[string]*model.User
	order []string
}

// NewUserMemory creates an empty in-memory user store.
func NewUserMemory() *UserMemory {
	return &UserMemory{users: make(map[string]*model.User)}
}

var _ repository.UserRepository = (*UserMemory)(nil)

// Create inserts a new user record.
func (r *UserMemory) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *u
	r.users[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	out := stored
	return &out, nil
}

// FindByID fetches a single user by ID.
func (r *UserMemory) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

// FindByEmail fetches a single user by email (case-insensitive).
func (r *UserMemory) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all users, newest first.
func (r *UserMemory) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.User, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if u, ok := r.users[r.order[i]]; ok {
			items = append(items, *u)
		}
	}
	return items, nil
}

// Update replaces the stored user, matched by ID.
func (r *UserMemory) Update(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *u
	r.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

// Delete removes a user by ID.
func (r *UserMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
