package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	maxCopies    = 10000
	maxPageLimit = 200
	defaultLimit = 50
)

// AddBookInput holds the catalogue data for a new book row.
type AddBookInput struct {
	Title        string
	Author       string
	Category     string
	ISBN         string
	Publisher    string
	PublishYear  *int
	Location     string
	Introduction string
	Total        int
}

// Validate checks all fields and collects all errors.
func (i AddBookInput) Validate() error {
	errs := domain.ValidateCatalogFields(i.Title, i.Author, i.PublishYear, time.Now())
	if i.Total < 0 {
		errs = append(errs, domain.FieldError{Field: "total", Message: "must be non-negative"})
	}
	if i.Total > maxCopies {
		errs = append(errs, domain.FieldError{Field: "total", Message: "max 10000 copies"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListLoansInput selects borrow records. Members only ever see their own.
type ListLoansInput struct {
	MemberID *uuid.UUID
	BookID   *uuid.UUID
	State    *domain.LoanState
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListLoansInput) Validate() error {
	var errs []domain.FieldError
	if i.State != nil && !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be open, returned or overdue"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListBooksInput selects catalogue rows.
type ListBooksInput struct {
	Category *string
	Status   *domain.BookStatus
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListBooksInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be AVAILABLE or BORROWED"})
	}
	if i.Limit < 0 || i.Limit > maxPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
