package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Register creates a member account directly, or records an admin
// registration request that needs operator approval.
// Returns ErrAlreadyExists if the username or email is taken by any account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Username = domain.NormalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, fmt.Errorf("registration.Register: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("registration.Register: %w", err)
	}

	if input.AccountType == AccountAdmin {
		req, err := s.RequestAdminRegistration(ctx, input.Email, input.Username, hash)
		if err != nil {
			return nil, err
		}
		return &RegisterResult{Pending: req}, nil
	}

	fullName := input.FullName
	if fullName == "" {
		fullName = input.Username
	}

	member, err := s.members.Create(ctx, &domain.Member{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("registration.Register: %w", err)
	}

	s.log.InfoContext(ctx, "member registered", slog.String("member_id", member.ID.String()))
	return &RegisterResult{Member: member}, nil
}

// ensureAvailable checks the username and email against both account tables.
func (s *Service) ensureAvailable(ctx context.Context, username, email string) error {
	taken, err := s.members.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("check members: %w", err)
	}
	if !taken {
		taken, err = s.admins.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return fmt.Errorf("check admins: %w", err)
		}
	}
	if taken {
		return fmt.Errorf("username or email: %w", domain.ErrAlreadyExists)
	}
	return nil
}

// RequestAdminRegistration records an admin registration request and asks
// the operator to approve it. passwordHash must already be hashed.
//
// The request is stored even if the operator email cannot be scheduled;
// AdminRequest.NotificationQueued reports that case.
func (s *Service) RequestAdminRegistration(ctx context.Context, email, username, passwordHash string) (*AdminRequest, error) {
	email = domain.NormalizeEmail(email)
	username = domain.NormalizeUsername(username)
	if email == "" || username == "" || passwordHash == "" {
		return nil, domain.NewValidationError("registration", "email, username and password hash are required")
	}

	now := s.now()

	if n, err := s.tokens.DeleteStale(ctx, now.Add(-s.cfg.TokenTTL)); err != nil {
		s.log.WarnContext(ctx, "stale token cleanup failed", slog.String("error", err.Error()))
	} else if n > 0 {
		s.log.InfoContext(ctx, "stale tokens removed", slog.Int("count", n))
	}

	pending, err := s.tokens.HasPending(ctx, email, domain.SubjectKindAdmin)
	if err != nil {
		return nil, fmt.Errorf("registration.RequestAdminRegistration: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("registration.RequestAdminRegistration: %w", domain.ErrDuplicatePending)
	}

	raw, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("registration.RequestAdminRegistration: %w", err)
	}

	tok, err := s.tokens.Create(ctx, &domain.VerificationToken{
		Token:        raw,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		SubjectKind:  domain.SubjectKindAdmin,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.cfg.TokenTTL),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("registration.RequestAdminRegistration: %w", domain.ErrDuplicatePending)
	}
	if err != nil {
		return nil, fmt.Errorf("registration.RequestAdminRegistration: %w", err)
	}

	queued := s.send(ctx, domain.NotificationMessage{
		Kind:      domain.NotificationVerificationRequest,
		Recipient: tok.Email,
		Username:  tok.Username,
		Comment:   &raw,
	})

	s.log.InfoContext(ctx, "admin registration requested",
		slog.String("username", tok.Username),
		slog.Bool("notification_queued", queued),
	)

	return &AdminRequest{
		Email:              tok.Email,
		Username:           tok.Username,
		ExpiresAt:          tok.ExpiresAt,
		NotificationQueued: queued,
	}, nil
}

// CleanupStaleTokens deletes unused tokens that are past their validity window.
func (s *Service) CleanupStaleTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteStale(ctx, s.now().Add(-s.cfg.TokenTTL))
	if err != nil {
		return 0, fmt.Errorf("registration.CleanupStaleTokens: %w", err)
	}
	return n, nil
}

// send notifies and reports whether the message was accepted. Failures are
// logged, never returned.
func (s *Service) send(ctx context.Context, msg domain.NotificationMessage) bool {
	if err := s.notify.Notify(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "notification not scheduled",
			slog.String("kind", msg.Kind.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// TokenTTL returns the validity window of verification tokens.
func (s *Service) TokenTTL() time.Duration { return s.cfg.TokenTTL }
