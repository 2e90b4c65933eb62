package ledger

import (
	"context"
	"fmt"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Statistics returns catalogue and lending counts. Read-only.
func (s *Service) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	books, err := s.books.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger.Statistics: count books: %w", err)
	}
	members, err := s.members.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("ledger.Statistics: count members: %w", err)
	}
	open, overdue, err := s.loans.Counts(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("ledger.Statistics: count loans: %w", err)
	}

	return &domain.Statistics{
		Books:        books,
		Members:      members,
		OpenLoans:    open,
		OverdueLoans: overdue,
	}, nil
}

// ListLoans returns one page of borrow records and the total match count.
// A member asking without a member filter gets their own loans.
func (s *Service) ListLoans(ctx context.Context, input ListLoansInput) ([]domain.BorrowRecord, int, error) {
	callerID, admin, err := caller(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	if !admin {
		if input.MemberID != nil && *input.MemberID != callerID {
			return nil, 0, domain.ErrForbidden
		}
		input.MemberID = &callerID
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	records, total, err := s.loans.List(ctx, domain.LoanFilter{
		MemberID: input.MemberID,
		BookID:   input.BookID,
		State:    input.State,
		Limit:    limit,
		Offset:   input.Offset,
	}, s.now())
	if err != nil {
		return nil, 0, fmt.Errorf("ledger.ListLoans: %w", err)
	}
	return records, total, nil
}
