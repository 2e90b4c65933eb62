package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

type memberRepo interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, m *domain.Member) (*domain.Member, error)
}

type adminRepo interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
}

type tokenRepo interface {
	Create(ctx context.Context, t *domain.VerificationToken) (*domain.VerificationToken, error)
	GetForUpdate(ctx context.Context, token string) (*domain.VerificationToken, error)
	HasPending(ctx context.Context, email string, kind domain.SubjectKind) (bool, error)
	MarkUsed(ctx context.Context, token string) error
	DeleteStale(ctx context.Context, cutoff time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type notifier interface {
	Notify(ctx context.Context, msg domain.NotificationMessage) error
}

// Service registers members and runs the admin approval workflow.
type Service struct {
	members  memberRepo
	admins   adminRepo
	tokens   tokenRepo
	tx       txManager
	hasher   passwordHasher
	notify   notifier
	cfg      config.VerificationConfig
	newToken func() (string, error)
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new registration service.
func NewService(
	log *slog.Logger,
	members memberRepo,
	admins adminRepo,
	tokens tokenRepo,
	tx txManager,
	hasher passwordHasher,
	notify notifier,
	cfg config.VerificationConfig,
) *Service {
	return &Service{
		members:  members,
		admins:   admins,
		tokens:   tokens,
		tx:       tx,
		hasher:   hasher,
		notify:   notify,
		cfg:      cfg,
		newToken: auth.NewVerificationToken,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "registration"),
	}
}
