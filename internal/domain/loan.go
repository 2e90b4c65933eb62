package domain

import (
	"time"

	"github.com/google/uuid"
)

// BorrowRecord is one lending event. It is open until ReturnedAt is set.
type BorrowRecord struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	BorrowedAt time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
	Renewed    bool
}

// IsOpen returns true while the copy has not been returned.
func (r *BorrowRecord) IsOpen() bool {
	return r.ReturnedAt == nil
}

// IsOverdue returns true for an open loan whose due date has passed.
func (r *BorrowRecord) IsOverdue(now time.Time) bool {
	return r.IsOpen() && r.DueAt.Before(now)
}

// CanRenew checks the one-shot renewal rule and returns the reason it is refused.
func (r *BorrowRecord) CanRenew() error {
	if !r.IsOpen() {
		return ErrAlreadyReturned
	}
	if r.Renewed {
		return ErrAlreadyRenewed
	}
	return nil
}

// LoanFilter selects borrow records for listing.
type LoanFilter struct {
	MemberID *uuid.UUID
	BookID   *uuid.UUID
	State    *LoanState
	Limit    int
	Offset   int
}
