package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	SetAvailable(ctx context.Context, id uuid.UUID, available int) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type loanRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error)
	HasOpen(ctx context.Context, bookID, memberID uuid.UUID) (bool, error)
	CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int, error)
	Counts(ctx context.Context, now time.Time) (open, overdue int, err error)
	List(ctx context.Context, f domain.LoanFilter, now time.Time) ([]domain.BorrowRecord, int, error)
	Create(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error)
	Close(ctx context.Context, id uuid.UUID, returnedAt time.Time) (*domain.BorrowRecord, error)
	Renew(ctx context.Context, id uuid.UUID, dueAt time.Time) (*domain.BorrowRecord, error)
}

type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	Count(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the inventory ledger: copy counts and the borrow lifecycle.
// Every state change runs in one transaction and locks the rows it mutates,
// always the book before the borrow record.
type Service struct {
	books   bookRepo
	loans   loanRepo
	members memberRepo
	tx      txManager
	cfg     config.LendingConfig
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new ledger service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	loans loanRepo,
	members memberRepo,
	tx txManager,
	cfg config.LendingConfig,
) *Service {
	return &Service{
		books:   books,
		loans:   loans,
		members: members,
		tx:      tx,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log.With("service", "ledger"),
	}
}

// caller returns the authenticated caller and whether it is an admin.
func caller(ctx context.Context) (uuid.UUID, bool, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, false, domain.ErrUnauthorized
	}
	return id, ctxutil.IsAdmin(ctx), nil
}

// requireAdmin fails unless the caller is an authenticated admin.
func requireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// authorizeLoan lets members act on their own loans and admins on any.
func authorizeLoan(ctx context.Context, rec *domain.BorrowRecord) error {
	id, admin, err := caller(ctx)
	if err != nil {
		return err
	}
	if !admin && rec.MemberID != id {
		return domain.ErrForbidden
	}
	return nil
}
