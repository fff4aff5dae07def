package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"librisvc/internal/model"
	"librisvc/internal/repository"
)

// DefaultFeePerDay is the late fee in minor currency units per full day a
// document stays out past its due date.
const DefaultFeePerDay int64 = 1000

// CreateBorrowingInput describes a new borrow transaction. Class is optional
// and falls back to the borrowing user's class.
type CreateBorrowingInput struct {
	UserID     string    `json:"user_id"`
	Class      string    `json:"class"`
	DocumentID string    `json:"document_id"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
}

// HistoryFilter narrows ledger listings. Query matches borrower, document
// title, or class (case-insensitive substring). Status is one of
// all|active|returned|overdue; overdue selects active records past due.
type HistoryFilter struct {
	Query  string
	Status string
}

// BorrowingService keeps the ledger, the document inventory, and the user
// directory mutually consistent: a borrow appends a record, takes a copy out
// of the inventory, and bumps the user's borrowed count, all-or-nothing.
type BorrowingService interface {
	// Create opens a new borrowing. Fails if the user or document is unknown,
	// the document has no copies left, the same user already holds it, or
	// dueDate is not after borrowDate.
	Create(ctx context.Context, in CreateBorrowingInput) (*model.Borrowing, error)

	// Return closes a borrowing exactly once: sets the return date, computes
	// the late fee, hands the copy back to the inventory, and decrements the
	// user's borrowed count.
	Return(ctx context.Context, id string) (*model.Borrowing, error)

	// Get returns a single ledger record by ID.
	Get(ctx context.Context, id string) (*model.Borrowing, error)

	// List returns ledger records matching the filter, newest first.
	List(ctx context.Context, f HistoryFilter) ([]model.Borrowing, error)

	// ExportCSV renders the filtered history as CSV per the export format.
	ExportCSV(ctx context.Context, f HistoryFilter) ([]byte, error)

	// ExportFilename is the suggested attachment name for an export done now.
	ExportFilename() string
}

// borrowingService is a concrete implementation of BorrowingService.
type borrowingService struct {
	repo      repository.BorrowingRepository
	inventory InventoryService
	users     UserService
	feePerDay int64
	now       func() time.Time
}

// NewBorrowingService constructs a new BorrowingService. feePerDay <= 0 falls
// back to DefaultFeePerDay.
func NewBorrowingService(repo repository.BorrowingRepository, inventory InventoryService, users UserService, feePerDay int64) BorrowingService {
	if feePerDay <= 0 {
		feePerDay = DefaultFeePerDay
	}
	return &borrowingService{
		repo:      repo,
		inventory: inventory,
		users:     users,
		feePerDay: feePerDay,
		now:       time.Now,
	}
}

func (s *borrowingService) Create(ctx context.Context, in CreateBorrowingInput) (*model.Borrowing, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if in.DocumentID == "" {
		return nil, fmt.Errorf("%w: document id is required", ErrValidation)
	}
	if in.BorrowDate.IsZero() {
		in.BorrowDate = s.now().UTC()
	}
	if !in.DueDate.After(in.BorrowDate) {
		return nil, fmt.Errorf("%w: due date must be after borrow date", ErrValidation)
	}

	user, err := s.users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if in.Class == "" {
		in.Class = user.Class
	}

	doc, err := s.inventory.Borrow(ctx, in.DocumentID, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.users.IncrementBorrowed(ctx, in.UserID); err != nil {
		_, _ = s.inventory.Return(ctx, in.DocumentID, in.UserID)
		return nil, err
	}

	rec := &model.Borrowing{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		Borrower:      user.Name,
		Class:         in.Class,
		DocumentID:    doc.ID,
		DocumentTitle: doc.Name,
		BorrowDate:    in.BorrowDate,
		DueDate:       in.DueDate,
		Status:        model.BorrowingActive,
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		// Undo both side effects so a failed append leaves no trace.
		_ = s.users.DecrementBorrowed(ctx, in.UserID)
		_, _ = s.inventory.Return(ctx, in.DocumentID, in.UserID)
		return nil, err
	}
	return stored, nil
}

func (s *borrowingService) Return(ctx context.Context, id string) (*model.Borrowing, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == model.BorrowingReturned {
		return nil, fmt.Errorf("borrowing %s: %w", id, ErrAlreadyReturned)
	}

	// Inventory first: the ledger status flip is only committed after the
	// copy is back, so a failed return changes nothing.
	if _, err := s.inventory.Return(ctx, rec.DocumentID, rec.UserID); err != nil {
		return nil, err
	}
	if err := s.users.DecrementBorrowed(ctx, rec.UserID); err != nil {
		_, _ = s.inventory.Borrow(ctx, rec.DocumentID, rec.UserID)
		return nil, err
	}

	now := s.now().UTC()
	fee := s.lateFee(rec.DueDate, now)
	rec.ReturnDate = &now
	rec.LateFee = &fee
	rec.Status = model.BorrowingReturned

	stored, err := s.repo.Update(ctx, rec)
	if err != nil {
		_ = s.users.IncrementBorrowed(ctx, rec.UserID)
		_, _ = s.inventory.Borrow(ctx, rec.DocumentID, rec.UserID)
		return nil, err
	}
	return stored, nil
}

func (s *borrowingService) Get(ctx context.Context, id string) (*model.Borrowing, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("borrowing %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (s *borrowingService) List(ctx context.Context, f HistoryFilter) ([]model.Borrowing, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	out := recs[:0]
	for _, rec := range recs {
		if matchesFilter(rec, f, now) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matchesFilter(rec model.Borrowing, f HistoryFilter, now time.Time) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(rec.Borrower), q) &&
			!strings.Contains(strings.ToLower(rec.DocumentTitle), q) &&
			!strings.Contains(strings.ToLower(rec.Class), q) {
			return false
		}
	}
	switch f.Status {
	case "", "all":
		return true
	case "active":
		return rec.Status == model.BorrowingActive
	case "returned":
		return rec.Status == model.BorrowingReturned
	case "overdue":
		return Overdue(rec, now)
	default:
		return false
	}
}

// lateFee charges feePerDay for every started day past the due date.
// Fractional days round up; on-time or early returns cost nothing.
func (s *borrowingService) lateFee(due, now time.Time) int64 {
	return int64(daysLate(due, now)) * s.feePerDay
}

func daysLate(due, now time.Time) int {
	diff := now.Sub(due)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Overdue reports whether an active record is past its due date. Overdue is
// never stored on the record; the due date and the clock are the only
// authority.
func Overdue(rec model.Borrowing, now time.Time) bool {
	return rec.Status == model.BorrowingActive && rec.DueDate.Before(now)
}

// DaysOverdue returns the number of started days an active record is past
// due, zero when it is not.
func DaysOverdue(rec model.Borrowing, now time.Time) int {
	if !Overdue(rec, now) {
		return 0
	}
	return daysLate(rec.DueDate, now)
}
