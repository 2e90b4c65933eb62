package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
)

// NewArrivalsShelf is where approved submissions are shelved.
const NewArrivalsShelf = "New arrivals"

type submissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error)
	CountPending(ctx context.Context) (int, error)
	List(ctx context.Context, f domain.SubmissionFilter) ([]domain.BookSubmission, error)
	Create(ctx context.Context, s *domain.BookSubmission) (*domain.BookSubmission, error)
	UpdateStatus(ctx context.Context, s *domain.BookSubmission) (*domain.BookSubmission, error)
}

type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

// catalog adds approved submissions to the catalogue with the ledger's
// insert policy.
type catalog interface {
	AddOrReplaceBook(ctx context.Context, input ledger.AddBookInput) (*domain.Book, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, msg domain.NotificationMessage) error
}

// Service handles member book submissions and their review.
type Service struct {
	submissions submissionRepo
	members     memberRepo
	catalog     catalog
	tx          txManager
	notify      notifier
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new submission service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	members memberRepo,
	catalog catalog,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		submissions: submissions,
		members:     members,
		catalog:     catalog,
		tx:          tx,
		notify:      notify,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "submission"),
	}
}
