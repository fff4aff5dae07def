package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"librisvc/internal/model"
	"librisvc/internal/repository"
)

// ErrEmailTaken means another account already uses the email address.
var ErrEmailTaken = errors.New("email already registered")

// AddUserInput is the signup spec. Password is required for admins only and
// is stored as a bcrypt hash; class is required for students.
type AddUserInput struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	Class     string         `json:"class"`
	StudentID string         `json:"student_id"`
	Password  string         `json:"password"`
}

// UserService is the user directory. The borrowed-documents count is owned by
// the borrowing ledger via the Increment/Decrement hooks and is never set
// directly.
type UserService interface {
	// Add registers a new account with role-specific required fields.
	Add(ctx context.Context, in AddUserInput) (*model.User, error)

	// Get returns a single user by ID.
	Get(ctx context.Context, id string) (*model.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)

	// Remove deletes a user. It fails with ErrUserBorrowing while the user
	// still holds borrowed documents.
	Remove(ctx context.Context, id string) error

	// IncrementBorrowed bumps the user's open-borrowing count. Called by the
	// borrowing ledger only.
	IncrementBorrowed(ctx context.Context, id string) error

	// DecrementBorrowed lowers the user's open-borrowing count, never below
	// zero. Called by the borrowing ledger only.
	DecrementBorrowed(ctx context.Context, id string) error
}

// userService is a concrete implementation of UserService.
type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Add(ctx context.Context, in AddUserInput) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if len(in.Name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	var passwordHash string
	switch in.Role {
	case model.RoleStudent:
		if in.Class == "" {
			return nil, fmt.Errorf("%w: class is required for students", ErrValidation)
		}
	case model.RoleTeacher:
		// no extra fields
	case model.RoleAdmin:
		if in.Password == "" {
			return nil, fmt.Errorf("%w: password is required for admins", ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hash)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%s: %w", in.Email, ErrEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		Class:        in.Class,
		StudentID:    in.StudentID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Remove(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.BorrowedDocuments > 0 {
		return fmt.Errorf("user %s: %w", id, ErrUserBorrowing)
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) IncrementBorrowed(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.BorrowedDocuments++
	_, err = s.repo.Update(ctx, u)
	return err
}

func (s *userService) DecrementBorrowed(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.BorrowedDocuments > 0 {
		u.BorrowedDocuments--
	}
	_, err = s.repo.Update(ctx, u)
	return err
}
