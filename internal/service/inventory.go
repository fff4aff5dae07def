package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"librisvc/internal/model"
	"librisvc/internal/repository"
	"librisvc/internal/storage"
)

// AddDocumentInput is the spec for a new document. Quantity applies to
// physical documents; URL/FileType to digital ones.
type AddDocumentInput struct {
	Name        string                 `json:"name"`
	Kind        model.DocumentKind     `json:"kind"`
	Category    model.DocumentCategory `json:"category"`
	Description string                 `json:"description"`
	Quantity    int                    `json:"quantity"`
	URL         string                 `json:"url"`
	FileType    string                 `json:"file_type"`
}

// InventoryService owns document availability: every quantity, borrower-set,
// and status mutation goes through Borrow/Return so the three stay mutually
// consistent.
type InventoryService interface {
	// Add registers a new document. Physical documents require quantity >= 1,
	// digital ones a file reference (URL + file type).
	Add(ctx context.Context, in AddDocumentInput) (*model.Document, error)

	// Upload registers a digital document whose file is stored in the object
	// store. The object is deleted again if the repository insert fails.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, in AddDocumentInput) (*model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]model.Document, error)

	// Remove deletes a document. It fails with ErrDocumentBorrowed while any
	// active borrower exists; for uploaded digital documents the stored
	// object is deleted as well.
	Remove(ctx context.Context, id string) error

	// Borrow records userID as an active borrower and, for physical
	// documents, decrements the available quantity.
	Borrow(ctx context.Context, documentID, userID string) (*model.Document, error)

	// Return removes userID from the active borrowers and, for physical
	// documents, increments the available quantity (clamped at the total).
	Return(ctx context.Context, documentID, userID string) (*model.Document, error)

	// DownloadURL returns a time-limited URL for an uploaded digital
	// document's file.
	DownloadURL(ctx context.Context, id string) (string, error)
}

// inventoryService is a concrete implementation of InventoryService.
type inventoryService struct {
	repo  repository.DocumentRepository
	store storage.Storage // nil when object storage is not configured
}

// NewInventoryService constructs a new InventoryService. store may be nil; in
// that case digital documents can only carry external URLs.
func NewInventoryService(repo repository.DocumentRepository, store storage.Storage) InventoryService {
	return &inventoryService{repo: repo, store: store}
}

func (s *inventoryService) Add(ctx context.Context, in AddDocumentInput) (*model.Document, error) {
	doc, err := newDocument(in)
	if err != nil {
		return nil, err
	}
	if doc.Kind == model.DocumentDigital && doc.URL == "" {
		return nil, fmt.Errorf("%w: digital documents require a file reference", ErrValidation)
	}
	return s.repo.Create(ctx, doc)
}

func (s *inventoryService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, in AddDocumentInput) (*model.Document, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrValidation)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: file content is required", ErrValidation)
	}
	in.Kind = model.DocumentDigital
	if in.FileType == "" {
		in.FileType = strings.ToUpper(strings.TrimPrefix(filepath.Ext(originalFilename), "."))
	}
	doc, err := newDocument(in)
	if err != nil {
		return nil, err
	}

	// Stored filename is UUID + original extension, under a documents/ prefix.
	key := filepath.ToSlash(filepath.Join("documents", uuid.New().String()+filepath.Ext(originalFilename)))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc.StorageKey = objInfo.Key
	doc.URL = objInfo.Key
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("save failed: %w", err)
	}
	return stored, nil
}

func (s *inventoryService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return doc, nil
}

func (s *inventoryService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.List(ctx)
}

func (s *inventoryService) Remove(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if len(doc.Borrowers) > 0 {
		return fmt.Errorf("document %s: %w", id, ErrDocumentBorrowed)
	}
	// Delete the stored object first; a dangling object is worse than a
	// repeatable delete.
	if doc.StorageKey != "" && s.store != nil {
		if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *inventoryService) Borrow(ctx context.Context, documentID, userID string) (*model.Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.HasBorrower(userID) {
		return nil, fmt.Errorf("document %s, user %s: %w", documentID, userID, ErrDuplicateBorrow)
	}
	if doc.Kind == model.DocumentPhysical {
		if doc.AvailableQuantity == 0 {
			return nil, fmt.Errorf("document %s: %w", documentID, ErrNoCopies)
		}
		doc.AvailableQuantity--
	}
	doc.Borrowers = append(doc.Borrowers, userID)
	doc.Status = deriveStatus(doc)
	return s.repo.Update(ctx, doc)
}

func (s *inventoryService) Return(ctx context.Context, documentID, userID string) (*model.Document, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.HasBorrower(userID) {
		return nil, fmt.Errorf("document %s, user %s: %w", documentID, userID, ErrNotBorrowed)
	}
	borrowers := doc.Borrowers[:0]
	for _, b := range doc.Borrowers {
		if b != userID {
			borrowers = append(borrowers, b)
		}
	}
	doc.Borrowers = borrowers
	if doc.Kind == model.DocumentPhysical && doc.AvailableQuantity < doc.Quantity {
		doc.AvailableQuantity++
	}
	doc.Status = deriveStatus(doc)
	return s.repo.Update(ctx, doc)
}

func (s *inventoryService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if doc.StorageKey == "" || s.store == nil {
		if doc.Kind == model.DocumentDigital && doc.URL != "" {
			return doc.URL, nil
		}
		return "", fmt.Errorf("document %s has no stored file: %w", id, ErrNotFound)
	}
	return s.store.PresignGet(ctx, doc.StorageKey, 15*time.Minute)
}

// newDocument validates the input and builds a fresh document with derived
// initial state: status available, no borrowers, full availability.
func newDocument(in AddDocumentInput) (*model.Document, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	switch in.Kind {
	case model.DocumentPhysical:
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: physical documents require quantity >= 1", ErrValidation)
		}
	case model.DocumentDigital:
		if in.Quantity != 0 {
			return nil, fmt.Errorf("%w: digital documents carry no quantity", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown document kind %q", ErrValidation, in.Kind)
	}
	if in.Category == "" {
		in.Category = model.CategoryGeneral
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Kind:        in.Kind,
		Category:    in.Category,
		Description: in.Description,
		URL:         in.URL,
		FileType:    in.FileType,
		Borrowers:   []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if in.Kind == model.DocumentPhysical {
		doc.Quantity = in.Quantity
		doc.AvailableQuantity = in.Quantity
	}
	doc.Status = deriveStatus(doc)
	return doc, nil
}

// deriveStatus is the single source of truth for a document's status: a pure
// function of its quantity and borrower state.
func deriveStatus(d *model.Document) model.DocumentStatus {
	if d.Kind == model.DocumentPhysical && d.AvailableQuantity == 0 {
		return model.StatusOutOfStock
	}
	if len(d.Borrowers) > 0 {
		return model.StatusBorrowed
	}
	return model.StatusAvailable
}
