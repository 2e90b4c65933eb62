package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Borrow lends one copy of a book to the calling member.
//
// The book row is locked for the whole transaction, so two borrowers racing
// for the last copy are serialized: the second sees available = 0.
func (s *Service) Borrow(ctx context.Context, bookID uuid.UUID) (*domain.BorrowRecord, error) {
	memberID, _, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var rec *domain.BorrowRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		book, err := s.books.GetForUpdate(ctx, bookID)
		if err != nil {
			return err
		}
		if _, err := s.members.GetByID(ctx, memberID); err != nil {
			return err
		}
		if !book.CanLend() {
			return fmt.Errorf("book %s: %w", bookID, domain.ErrExhausted)
		}

		held, err := s.loans.HasOpen(ctx, bookID, memberID)
		if err != nil {
			return fmt.Errorf("check open loan: %w", err)
		}
		if held {
			return domain.ErrAlreadyHeld
		}

		if _, err := s.books.SetAvailable(ctx, bookID, book.Available-1); err != nil {
			return fmt.Errorf("decrement available: %w", err)
		}

		now := s.now()
		rec, err = s.loans.Create(ctx, &domain.BorrowRecord{
			ID:         uuid.New(),
			BookID:     bookID,
			MemberID:   memberID,
			BorrowedAt: now,
			DueAt:      now.Add(s.cfg.LoanPeriod),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrAlreadyHeld
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Borrow: %w", err)
	}

	s.log.InfoContext(ctx, "book borrowed",
		slog.String("loan_id", rec.ID.String()),
		slog.String("book_id", bookID.String()),
		slog.String("member_id", memberID.String()),
	)
	return rec, nil
}

// Return closes an open loan and puts the copy back on the shelf.
func (s *Service) Return(ctx context.Context, loanID uuid.UUID) (*domain.BorrowRecord, error) {
	if _, _, err := caller(ctx); err != nil {
		return nil, err
	}

	var rec *domain.BorrowRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if err := authorizeLoan(ctx, current); err != nil {
			return err
		}

		book, err := s.books.GetForUpdate(ctx, current.BookID)
		if err != nil {
			return err
		}
		current, err = s.loans.GetForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if !current.IsOpen() {
			return domain.ErrAlreadyReturned
		}

		rec, err = s.loans.Close(ctx, loanID, s.now())
		if err != nil {
			return fmt.Errorf("close loan: %w", err)
		}

		if _, err := s.books.SetAvailable(ctx, book.ID, min(book.Available+1, book.Total)); err != nil {
			return fmt.Errorf("increment available: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Return: %w", err)
	}

	s.log.InfoContext(ctx, "book returned",
		slog.String("loan_id", loanID.String()),
		slog.String("book_id", rec.BookID.String()),
	)
	return rec, nil
}

// Renew extends an open loan once, counting from its current due date.
func (s *Service) Renew(ctx context.Context, loanID uuid.UUID) (*domain.BorrowRecord, error) {
	if _, _, err := caller(ctx); err != nil {
		return nil, err
	}

	var rec *domain.BorrowRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.loans.GetForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if err := authorizeLoan(ctx, current); err != nil {
			return err
		}
		if err := current.CanRenew(); err != nil {
			return err
		}

		rec, err = s.loans.Renew(ctx, loanID, current.DueAt.Add(s.cfg.RenewalPeriod))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Renew: %w", err)
	}

	s.log.InfoContext(ctx, "loan renewed",
		slog.String("loan_id", loanID.String()),
		slog.Time("due_at", rec.DueAt),
	)
	return rec, nil
}
