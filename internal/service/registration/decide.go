package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Decide approves or rejects a pending admin registration.
//
// The token is locked, checked and marked used in one transaction; on
// approval the admin account is created in that same transaction. Marking
// the token used is the last write, so a decision can never be replayed.
// The applicant is notified after commit and a notification failure only
// clears Decision.NotificationQueued.
func (s *Service) Decide(ctx context.Context, token string, approved bool) (*Decision, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	var (
		tok   *domain.VerificationToken
		admin *domain.Admin
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		tok, err = s.tokens.GetForUpdate(ctx, token)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidToken
		}
		if err != nil {
			return err
		}

		if err := tok.CheckDecidable(s.now()); err != nil {
			return err
		}

		if approved {
			admin, err = s.admins.Create(ctx, &domain.Admin{
				ID:           uuid.New(),
				Username:     tok.Username,
				Email:        tok.Email,
				PasswordHash: tok.PasswordHash,
				CreatedAt:    s.now(),
			})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
		}

		return s.tokens.MarkUsed(ctx, token)
	})
	if err != nil {
		return nil, fmt.Errorf("registration.Decide: %w", err)
	}

	kind := domain.NotificationRejection
	if approved {
		kind = domain.NotificationApproval
	}
	queued := s.send(ctx, domain.NotificationMessage{
		Kind:      kind,
		Recipient: tok.Email,
		Username:  tok.Username,
	})

	s.log.InfoContext(ctx, "admin registration decided",
		slog.String("username", tok.Username),
		slog.Bool("approved", approved),
		slog.Bool("notification_queued", queued),
	)

	return &Decision{
		Approved:           approved,
		Username:           tok.Username,
		Email:              tok.Email,
		Admin:              admin,
		NotificationQueued: queued,
	}, nil
}
