package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is one catalogue row. Several rows may describe the same title.
type Book struct {
	ID           uuid.UUID
	Title        string
	Author       string
	Category     string
	ISBN         string
	Publisher    string
	PublishYear  *int
	Location     string
	Introduction string
	Total        int
	Available    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	MaxTitleLen    = 255
	MaxAuthorLen   = 255
	MinPublishYear = 1450
)

// ValidateCatalogFields checks the fields shared by every path that ends in a
// catalogue row. The publish year may be at most one year in the future.
func ValidateCatalogFields(title, author string, publishYear *int, now time.Time) []FieldError {
	var errs []FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	} else if len(title) > MaxTitleLen {
		errs = append(errs, FieldError{Field: "title", Message: "max 255 characters"})
	}
	author = strings.TrimSpace(author)
	if author == "" {
		errs = append(errs, FieldError{Field: "author", Message: "required"})
	} else if len(author) > MaxAuthorLen {
		errs = append(errs, FieldError{Field: "author", Message: "max 255 characters"})
	}
	if publishYear != nil {
		if y := *publishYear; y < MinPublishYear || y > now.Year()+1 {
			errs = append(errs, FieldError{Field: "publish_year", Message: "out of range"})
		}
	}
	return errs
}

// Status is a pure function of Available.
func (b *Book) Status() BookStatus {
	return StatusFor(b.Available)
}

// CanLend reports whether at least one copy is on the shelf.
func (b *Book) CanLend() bool {
	return b.Available > 0
}

// StatusFor derives the book status from an available-copy count.
func StatusFor(available int) BookStatus {
	if available > 0 {
		return BookStatusAvailable
	}
	return BookStatusBorrowed
}

// Statistics is a point-in-time snapshot of catalogue and lending counts.
type Statistics struct {
	Books        int
	Members      int
	OpenLoans    int
	OverdueLoans int
}

// BookFilter narrows catalogue listings.
type BookFilter struct {
	Category *string
	Status   *BookStatus
	Limit    int
	Offset   int
}
