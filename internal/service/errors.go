package service

import "errors"

// Failure taxonomy shared by the three services. Validation failures wrap
// ErrValidation with a field-specific message; the rest are matched with
// errors.Is by the HTTP layer.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")

	// ErrNoCopies means a physical document has no available copies left.
	ErrNoCopies = errors.New("no copies available")

	// ErrDuplicateBorrow means the same user already holds an open borrowing
	// of the same document.
	ErrDuplicateBorrow = errors.New("document already borrowed by this user")

	// ErrNotBorrowed means a return was attempted by a user who is not among
	// the document's active borrowers.
	ErrNotBorrowed = errors.New("document is not borrowed by this user")

	// ErrAlreadyReturned means a ledger record was returned a second time; a
	// record transitions active to returned exactly once.
	ErrAlreadyReturned = errors.New("borrowing already returned")

	// ErrDocumentBorrowed blocks removal of a document while any active
	// borrowing still references it.
	ErrDocumentBorrowed = errors.New("document has active borrowings")

	// ErrUserBorrowing blocks removal of a user while their borrowed count is
	// above zero.
	ErrUserBorrowing = errors.New("user has active borrowings")
)
