package submission

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// SubmitInput holds a member's book proposal.
type SubmitInput struct {
	Title       string
	Author      string
	Category    string
	ISBN        string
	Publisher   string
	PublishYear *int
	Description string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	errs := domain.ValidateCatalogFields(i.Title, i.Author, i.PublishYear, time.Now())
	if len(i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewInput is an admin's decision on a submission.
type ReviewInput struct {
	SubmissionID uuid.UUID
	Approved     bool
	Comment      *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}
	if i.Comment != nil && len(*i.Comment) > 1000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 1000 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects submissions. Members only ever see their own.
type ListInput struct {
	MemberID *uuid.UUID
	Status   *domain.SubmissionStatus
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > 200 {
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

// ReviewResult reports a review. NotificationQueued is advisory.
type ReviewResult struct {
	Submission         *domain.BookSubmission
	Book               *domain.Book
	NotificationQueued bool
}
