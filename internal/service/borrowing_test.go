package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"librisvc/internal/model"
	"librisvc/internal/repository/memory"
	repoMocks "librisvc/internal/repository/mocks"
)

type ledgerFixture struct {
	inventory InventoryService
	users     UserService
	ledger    *borrowingService
	user      *model.User
	doc       *model.Document
}

// newLedgerFixture wires real in-memory repositories under all three services
// with a frozen clock, one user, and one physical document (2 copies).
func newLedgerFixture(t *testing.T, now time.Time) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	inv := NewInventoryService(memory.NewDocumentMemory(), nil)
	usr := NewUserService(memory.NewUserMemory())
	brw := NewBorrowingService(memory.NewBorrowingMemory(), inv, usr, 1000).(*borrowingService)
	brw.now = func() time.Time { return now }

	user, err := usr.Add(ctx, AddUserInput{
		Name: "Sarah Smith", Email: "sarah@example.com",
		Role: model.RoleStudent, Class: "5A",
	})
	require.NoError(t, err)

	doc, err := inv.Add(ctx, AddDocumentInput{
		Name: "Mathematics Textbook Grade 5", Kind: model.DocumentPhysical,
		Category: model.CategoryAcademic, Quantity: 2,
	})
	require.NoError(t, err)

	return &ledgerFixture{inventory: inv, users: usr, ledger: brw, user: user, doc: doc}
}

func (f *ledgerFixture) borrow(t *testing.T, due time.Time) *model.Borrowing {
	t.Helper()
	rec, err := f.ledger.Create(context.Background(), CreateBorrowingInput{
		UserID:     f.user.ID,
		DocumentID: f.doc.ID,
		DueDate:    due,
	})
	require.NoError(t, err)
	return rec
}

func TestBorrowingCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("snapshots and side effects", func(t *testing.T) {
		f := newLedgerFixture(t, now)
		rec := f.borrow(t, now.AddDate(0, 0, 14))

		assert.Equal(t, "Sarah Smith", rec.Borrower)
		assert.Equal(t, "5A", rec.Class, "class falls back to the user's")
		assert.Equal(t, "Mathematics Textbook Grade 5", rec.DocumentTitle)
		assert.Equal(t, model.BorrowingActive, rec.Status)
		assert.Nil(t, rec.ReturnDate)
		assert.Nil(t, rec.LateFee)

		doc, _ := f.inventory.Get(ctx, f.doc.ID)
		assert.Equal(t, 1, doc.AvailableQuantity)
		user, _ := f.users.Get(ctx, f.user.ID)
		assert.Equal(t, 1, user.BorrowedDocuments)
	})

	t.Run("due date must be after borrow date", func(t *testing.T) {
		f := newLedgerFixture(t, now)
		_, err := f.ledger.Create(ctx, CreateBorrowingInput{
			UserID: f.user.ID, DocumentID: f.doc.ID,
			BorrowDate: now, DueDate: now,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newLedgerFixture(t, now)
		_, err := f.ledger.Create(ctx, CreateBorrowingInput{
			UserID: "ghost", DocumentID: f.doc.ID, DueDate: now.AddDate(0, 0, 7),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate borrow propagated, no count change", func(t *testing.T) {
		f := newLedgerFixture(t, now)
		f.borrow(t, now.AddDate(0, 0, 14))

		_, err := f.ledger.Create(ctx, CreateBorrowingInput{
			UserID: f.user.ID, DocumentID: f.doc.ID, DueDate: now.AddDate(0, 0, 14),
		})
		assert.ErrorIs(t, err, ErrDuplicateBorrow)

		user, _ := f.users.Get(ctx, f.user.ID)
		assert.Equal(t, 1, user.BorrowedDocuments)
	})

	t.Run("ledger append failure rolls back inventory and count", func(t *testing.T) {
		inv := NewInventoryService(memory.NewDocumentMemory(), nil)
		usr := NewUserService(memory.NewUserMemory())
		mRepo := new(repoMocks.MockBorrowingRepository)
		brw := NewBorrowingService(mRepo, inv, usr, 1000).(*borrowingService)
		brw.now = func() time.Time { return now }

		user, err := usr.Add(ctx, AddUserInput{Name: "John Doe", Email: "john@example.com", Role: model.RoleTeacher})
		require.NoError(t, err)
		doc, err := inv.Add(ctx, AddDocumentInput{Name: "Atlas", Kind: model.DocumentPhysical, Quantity: 3})
		require.NoError(t, err)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("append fail"))

		_, err = brw.Create(ctx, CreateBorrowingInput{
			UserID: user.ID, DocumentID: doc.ID, DueDate: now.AddDate(0, 0, 7),
		})
		assert.Error(t, err)

		got, _ := inv.Get(ctx, doc.ID)
		assert.Equal(t, 3, got.AvailableQuantity)
		assert.Empty(t, got.Borrowers)
		u, _ := usr.Get(ctx, user.ID)
		assert.Zero(t, u.BorrowedDocuments)
		mRepo.AssertExpectations(t)
	})
}

func TestBorrowingReturn(t *testing.T) {
	ctx := context.Background()
	borrowDay := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	feeCases := []struct {
		name       string
		returnedAt time.Time
		wantFee    int64
	}{
		{"on due date", borrowDay.AddDate(0, 0, 14), 0},
		{"one day late", borrowDay.AddDate(0, 0, 15), 1000},
		{"five days late", borrowDay.AddDate(0, 0, 19), 5000},
		{"half a day late rounds up", borrowDay.AddDate(0, 0, 14).Add(12 * time.Hour), 1000},
	}

	for _, tc := range feeCases {
		t.Run("late fee "+tc.name, func(t *testing.T) {
			f := newLedgerFixture(t, borrowDay)
			rec := f.borrow(t, borrowDay.AddDate(0, 0, 14))

			f.ledger.now = func() time.Time { return tc.returnedAt }
			got, err := f.ledger.Return(ctx, rec.ID)
			require.NoError(t, err)

			assert.Equal(t, model.BorrowingReturned, got.Status)
			require.NotNil(t, got.LateFee)
			assert.Equal(t, tc.wantFee, *got.LateFee)
			require.NotNil(t, got.ReturnDate)
			assert.Equal(t, tc.returnedAt, *got.ReturnDate)
		})
	}

	t.Run("returns exactly once", func(t *testing.T) {
		f := newLedgerFixture(t, borrowDay)
		rec := f.borrow(t, borrowDay.AddDate(0, 0, 14))

		_, err := f.ledger.Return(ctx, rec.ID)
		require.NoError(t, err)
		_, err = f.ledger.Return(ctx, rec.ID)
		assert.ErrorIs(t, err, ErrAlreadyReturned)
	})

	t.Run("inventory and count restored", func(t *testing.T) {
		f := newLedgerFixture(t, borrowDay)
		rec := f.borrow(t, borrowDay.AddDate(0, 0, 14))

		_, err := f.ledger.Return(ctx, rec.ID)
		require.NoError(t, err)

		doc, _ := f.inventory.Get(ctx, f.doc.ID)
		assert.Equal(t, 2, doc.AvailableQuantity)
		assert.Empty(t, doc.Borrowers)
		user, _ := f.users.Get(ctx, f.user.ID)
		assert.Zero(t, user.BorrowedDocuments)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newLedgerFixture(t, borrowDay)
		_, err := f.ledger.Return(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBorrowingList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	f := newLedgerFixture(t, now)
	overdueRec := f.borrow(t, now.AddDate(0, 0, 1))

	john, err := f.users.Add(ctx, AddUserInput{Name: "John Doe", Email: "john@example.com", Role: model.RoleTeacher})
	require.NoError(t, err)
	returned, err := f.ledger.Create(ctx, CreateBorrowingInput{
		UserID: john.ID, Class: "Staff", DocumentID: f.doc.ID, DueDate: now.AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	_, err = f.ledger.Return(ctx, returned.ID)
	require.NoError(t, err)

	// Two days pass; the first record is now overdue.
	f.ledger.now = func() time.Time { return now.AddDate(0, 0, 2) }

	t.Run("status filters", func(t *testing.T) {
		active, err := f.ledger.List(ctx, HistoryFilter{Status: "active"})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, overdueRec.ID, active[0].ID)

		ret, err := f.ledger.List(ctx, HistoryFilter{Status: "returned"})
		require.NoError(t, err)
		require.Len(t, ret, 1)
		assert.Equal(t, returned.ID, ret[0].ID)

		over, err := f.ledger.List(ctx, HistoryFilter{Status: "overdue"})
		require.NoError(t, err)
		require.Len(t, over, 1)
		assert.Equal(t, overdueRec.ID, over[0].ID)

		all, err := f.ledger.List(ctx, HistoryFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("query matches borrower, title, class", func(t *testing.T) {
		byName, err := f.ledger.List(ctx, HistoryFilter{Query: "sarah"})
		require.NoError(t, err)
		assert.Len(t, byName, 1)

		byClass, err := f.ledger.List(ctx, HistoryFilter{Query: "staff"})
		require.NoError(t, err)
		assert.Len(t, byClass, 1)

		byTitle, err := f.ledger.List(ctx, HistoryFilter{Query: "mathematics"})
		require.NoError(t, err)
		assert.Len(t, byTitle, 2)

		none, err := f.ledger.List(ctx, HistoryFilter{Query: "chemistry"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestOverdueDerivation(t *testing.T) {
	due := time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)
	rec := model.Borrowing{Status: model.BorrowingActive, DueDate: due}

	assert.False(t, Overdue(rec, due))
	assert.True(t, Overdue(rec, due.Add(time.Hour)))
	assert.Equal(t, 1, DaysOverdue(rec, due.Add(time.Hour)))
	assert.Equal(t, 3, DaysOverdue(rec, due.AddDate(0, 0, 2).Add(time.Hour)))

	rec.Status = model.BorrowingReturned
	assert.False(t, Overdue(rec, due.AddDate(0, 0, 10)))
	assert.Zero(t, DaysOverdue(rec, due.AddDate(0, 0, 10)))
}
