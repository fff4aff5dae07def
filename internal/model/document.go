package model

import "time"

// DocumentKind distinguishes physical copies on a shelf from digital files.
type DocumentKind string

const (
	DocumentPhysical DocumentKind = "physical"
	DocumentDigital  DocumentKind = "digital"
)

// DocumentCategory is the library's coarse shelf classification.
type DocumentCategory string

const (
	CategoryAcademic DocumentCategory = "academic"
	CategoryHistory  DocumentCategory = "history"
	CategorySkills   DocumentCategory = "skills"
	CategoryArts     DocumentCategory = "arts"
	CategoryGeneral  DocumentCategory = "general"
)

// DocumentStatus is derived from quantity and borrower state, never set
// directly by callers.
type DocumentStatus string

const (
	StatusAvailable  DocumentStatus = "available"
	StatusBorrowed   DocumentStatus = "borrowed"
	StatusOutOfStock DocumentStatus = "out_of_stock"
)

// Document represents one library document, physical or digital.
// Quantity and AvailableQuantity are meaningful for physical documents only.
// URL/FileType/StorageKey are meaningful for digital documents only; an
// uploaded file carries a StorageKey, an externally hosted one just a URL.
type Document struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Kind              DocumentKind     `json:"kind"`
	Category          DocumentCategory `json:"category"`
	Description       string           `json:"description,omitempty"`
	Quantity          int              `json:"quantity,omitempty"`
	AvailableQuantity int              `json:"available_quantity,omitempty"`
	URL               string           `json:"url,omitempty"`
	FileType          string           `json:"file_type,omitempty"`
	StorageKey        string           `json:"-"`
	Borrowers         []string         `json:"borrowers"`
	Status            DocumentStatus   `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}

// HasBorrower reports whether the user currently holds an open borrowing of
// this document.
func (d *Document) HasBorrower(userID string) bool {
	for _, b := range d.Borrowers {
		if b == userID {
			return true
		}
	}
	return false
}
