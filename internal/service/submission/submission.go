package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// Submit records a member's proposal as PENDING.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.BookSubmission, error) {
	memberID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.submissions.Create(ctx, &domain.BookSubmission{
		ID:          uuid.New(),
		MemberID:    memberID,
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		Category:    strings.TrimSpace(input.Category),
		ISBN:        strings.TrimSpace(input.ISBN),
		Publisher:   strings.TrimSpace(input.Publisher),
		PublishYear: input.PublishYear,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "book submitted",
		slog.String("submission_id", sub.ID.String()),
		slog.String("member_id", memberID.String()),
	)
	return sub, nil
}

// Review approves or rejects a pending submission. Approval adds one copy
// to the catalogue in the same transaction. The submitter is notified after
// commit; a failed notification never undoes the review.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		sub  *domain.BookSubmission
		book *domain.Book
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.submissions.GetForUpdate(ctx, input.SubmissionID)
		if err != nil {
			return err
		}
		if !current.IsPending() {
			return domain.ErrNotPending
		}

		now := s.now()
		current.ReviewedBy = &reviewerID
		current.ReviewedAt = &now
		current.ReviewComment = trimOrNil(input.Comment)

		if input.Approved {
			book, err = s.catalog.AddOrReplaceBook(ctx, ledger.AddBookInput{
				Title:        current.Title,
				Author:       current.Author,
				Category:     current.Category,
				ISBN:         current.ISBN,
				Publisher:    current.Publisher,
				PublishYear:  current.PublishYear,
				Location:     NewArrivalsShelf,
				Introduction: current.Description,
				Total:        1,
			})
			if err != nil {
				return fmt.Errorf("add to catalogue: %w", err)
			}
			current.Status = domain.SubmissionStatusApproved
			current.CreatedBookID = &book.ID
		} else {
			current.Status = domain.SubmissionStatusRejected
		}

		sub, err = s.submissions.UpdateStatus(ctx, current)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Review: %w", err)
	}

	queued := s.notifySubmitter(ctx, sub)

	s.log.InfoContext(ctx, "submission reviewed",
		slog.String("submission_id", sub.ID.String()),
		slog.String("status", sub.Status.String()),
		slog.Bool("notification_queued", queued),
	)
	return &ReviewResult{Submission: sub, Book: book, NotificationQueued: queued}, nil
}

// Cancel withdraws the caller's own pending submission.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error) {
	memberID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var sub *domain.BookSubmission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.submissions.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.MemberID != memberID {
			return domain.ErrForbidden
		}
		if !current.IsPending() {
			return domain.ErrNotPending
		}

		current.Status = domain.SubmissionStatusCancelled
		sub, err = s.submissions.UpdateStatus(ctx, current)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "submission cancelled", slog.String("submission_id", id.String()))
	return sub, nil
}

// Get returns one submission. Members may only read their own.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("submission.Get: %w", err)
	}
	if !ctxutil.IsAdmin(ctx) && sub.MemberID != callerID {
		return nil, domain.ErrForbidden
	}
	return sub, nil
}

// List returns submissions. A member without a filter gets their own.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.BookSubmission, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !ctxutil.IsAdmin(ctx) {
		if input.MemberID != nil && *input.MemberID != callerID {
			return nil, domain.ErrForbidden
		}
		input.MemberID = &callerID
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	subs, err := s.submissions.List(ctx, domain.SubmissionFilter{
		MemberID: input.MemberID,
		Status:   input.Status,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("submission.List: %w", err)
	}
	return subs, nil
}

// PendingCount returns how many submissions await review.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return 0, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdmin(ctx) {
		return 0, domain.ErrForbidden
	}

	n, err := s.submissions.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("submission.PendingCount: %w", err)
	}
	return n, nil
}

// notifySubmitter tells the member about the review outcome.
func (s *Service) notifySubmitter(ctx context.Context, sub *domain.BookSubmission) bool {
	member, err := s.members.GetByID(ctx, sub.MemberID)
	if err != nil {
		s.log.WarnContext(ctx, "submitter lookup failed",
			slog.String("submission_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}

	msg := domain.NotificationMessage{
		Kind:      domain.NotificationSubmissionApproval,
		Recipient: member.Email,
		Username:  member.Username,
		BookTitle: &sub.Title,
	}
	if sub.Status == domain.SubmissionStatusRejected {
		msg.Kind = domain.NotificationSubmissionRejection
		msg.Comment = sub.ReviewComment
	}

	if err := s.notify.Notify(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "notification not scheduled",
			slog.String("kind", msg.Kind.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
