package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// AddOrReplaceBook inserts a new catalogue row with every copy available.
// It never merges with an existing title: each call is a new row.
func (s *Service) AddOrReplaceBook(ctx context.Context, input AddBookInput) (*domain.Book, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.Create(ctx, &domain.Book{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Author:       strings.TrimSpace(input.Author),
		Category:     strings.TrimSpace(input.Category),
		ISBN:         strings.TrimSpace(input.ISBN),
		Publisher:    strings.TrimSpace(input.Publisher),
		PublishYear:  input.PublishYear,
		Location:     strings.TrimSpace(input.Location),
		Introduction: strings.TrimSpace(input.Introduction),
		Total:        input.Total,
		Available:    input.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.AddOrReplaceBook: %w", err)
	}

	s.log.InfoContext(ctx, "book added",
		slog.String("book_id", book.ID.String()),
		slog.Int("total", book.Total),
	)
	return book, nil
}

// GetBook returns one catalogue row.
func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetBook: %w", err)
	}
	return book, nil
}

// ListBooks returns one page of catalogue rows, newest first.
func (s *Service) ListBooks(ctx context.Context, input ListBooksInput) ([]domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	books, err := s.books.List(ctx, domain.BookFilter{
		Category: input.Category,
		Status:   input.Status,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.ListBooks: %w", err)
	}
	return books, nil
}

// DeleteBook removes a catalogue row. Refused while any copy is on loan.
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.books.GetForUpdate(ctx, id); err != nil {
			return err
		}

		open, err := s.loans.CountOpenByBook(ctx, id)
		if err != nil {
			return fmt.Errorf("count open loans: %w", err)
		}
		if open > 0 {
			return fmt.Errorf("book %s has %d open loans: %w", id, open, domain.ErrConflict)
		}

		return s.books.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("ledger.DeleteBook: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", id.String()))
	return nil
}
