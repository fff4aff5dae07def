package model

import "time"

// BorrowingStatus is the stored status of a ledger record. Overdue is a
// read-side derivation from the due date and the clock, not a stored state.
type BorrowingStatus string

const (
	BorrowingActive   BorrowingStatus = "active"
	BorrowingReturned BorrowingStatus = "returned"
)

// Borrowing is one ledger record: a borrow transaction from creation through
// its optional return. Borrower and DocumentTitle are snapshots taken at
// creation and are not kept in sync with later renames.
// ReturnDate and LateFee are set if and only if Status is returned.
type Borrowing struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Borrower      string          `json:"borrower"`
	Class         string          `json:"class"`
	DocumentID    string          `json:"document_id"`
	DocumentTitle string          `json:"document_title"`
	BorrowDate    time.Time       `json:"borrow_date"`
	DueDate       time.Time       `json:"due_date"`
	ReturnDate    *time.Time      `json:"return_date,omitempty"`
	LateFee       *int64          `json:"late_fee,omitempty"`
	Status        BorrowingStatus `json:"status"`
}
