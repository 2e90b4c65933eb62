package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookSubmission is a member's proposal to add a title to the catalogue.
type BookSubmission struct {
	ID            uuid.UUID
	MemberID      uuid.UUID
	Title         string
	Author        string
	Category      string
	ISBN          string
	Publisher     string
	PublishYear   *int
	Description   string
	Status        SubmissionStatus
	ReviewComment *string
	ReviewedBy    *uuid.UUID
	ReviewedAt    *time.Time
	CreatedBookID *uuid.UUID
	CreatedAt     time.Time
}

// IsPending returns true until an admin has reviewed the submission.
func (s *BookSubmission) IsPending() bool {
	return s.Status == SubmissionStatusPending
}

// SubmissionFilter selects submissions for listing.
type SubmissionFilter struct {
	MemberID *uuid.UUID
	Status   *SubmissionStatus
	Limit    int
	Offset   int
}
