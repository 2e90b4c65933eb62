// Package loan implements the borrow record repository using PostgreSQL.
package loan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides borrow record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new loan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const loanColumns = `id, book_id, member_id, borrowed_at, due_at, returned_at, renewed`

const createSQL = `
INSERT INTO borrow_records (id, book_id, member_id, borrowed_at, due_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + loanColumns

const getByIDSQL = `SELECT ` + loanColumns + ` FROM borrow_records WHERE id = $1`

const getForUpdateSQL = `SELECT ` + loanColumns + ` FROM borrow_records WHERE id = $1 FOR UPDATE`

const hasOpenSQL = `
SELECT EXISTS(
	SELECT 1 FROM borrow_records
	WHERE book_id = $1 AND member_id = $2 AND returned_at IS NULL
)`

const countOpenByBookSQL = `
SELECT count(*) FROM borrow_records WHERE book_id = $1 AND returned_at IS NULL`

const closeSQL = `
UPDATE borrow_records SET returned_at = $2
WHERE id = $1 AND returned_at IS NULL
RETURNING ` + loanColumns

const renewSQL = `
UPDATE borrow_records SET due_at = $2, renewed = true
WHERE id = $1 AND returned_at IS NULL AND NOT renewed
RETURNING ` + loanColumns

const countsSQL = `
SELECT
	count(*) FILTER (WHERE returned_at IS NULL),
	count(*) FILTER (WHERE returned_at IS NULL AND due_at < $1)
FROM borrow_records`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a borrow record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanLoan(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "borrow_record", id)
	}
	return rec, nil
}

// GetForUpdate returns a borrow record and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanLoan(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "borrow_record", id)
	}
	return rec, nil
}

// HasOpen reports whether the member already holds an open loan of the book.
func (r *Repo) HasOpen(ctx context.Context, bookID, memberID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, hasOpenSQL, bookID, memberID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "borrow_record", bookID)
	}
	return exists, nil
}

// CountOpenByBook returns the number of outstanding loans of a book.
func (r *Repo) CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countOpenByBookSQL, bookID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "borrow_record", bookID)
	}
	return n, nil
}

// Counts returns the open and overdue loan counts as of now.
func (r *Repo) Counts(ctx context.Context, now time.Time) (open, overdue int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countsSQL, now).Scan(&open, &overdue); err != nil {
		return 0, 0, fmt.Errorf("count loans: %w", err)
	}
	return open, overdue, nil
}

// List returns borrow records matching the filter, newest first, plus the
// total number of matches ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.LoanFilter, now time.Time) ([]domain.BorrowRecord, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.MemberID != nil {
		where = append(where, sq.Eq{"member_id": *f.MemberID})
	}
	if f.BookID != nil {
		where = append(where, sq.Eq{"book_id": *f.BookID})
	}
	if f.State != nil {
		switch *f.State {
		case domain.LoanStateOpen:
			where = append(where, sq.Eq{"returned_at": nil})
		case domain.LoanStateReturned:
			where = append(where, sq.NotEq{"returned_at": nil})
		case domain.LoanStateOverdue:
			where = append(where, sq.Eq{"returned_at": nil}, sq.Lt{"due_at": now})
		}
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("borrow_records").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count loans query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count loans: %w", err)
	}

	q := psql.Select(loanColumns).From("borrow_records").Where(where).
		OrderBy("borrowed_at DESC", "id")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list loans query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var records []domain.BorrowRecord
	for rows.Next() {
		rec, err := scanLoan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan loan: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list loans: %w", err)
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an open borrow record. A second open record for the same
// (book, member) violates ux_borrow_records_open and maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		rec.ID, rec.BookID, rec.MemberID,
		rec.BorrowedAt.UTC().Truncate(time.Microsecond),
		rec.DueAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanLoan(row)
	if err != nil {
		return nil, postgres.MapError(err, "borrow_record", rec.ID)
	}
	return created, nil
}

// Close sets the return timestamp of an open record.
// Returns domain.ErrNotFound if the record is missing or already closed.
func (r *Repo) Close(ctx context.Context, id uuid.UUID, returnedAt time.Time) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanLoan(querier.QueryRow(ctx, closeSQL, id, returnedAt.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, postgres.MapError(err, "borrow_record", id)
	}
	return rec, nil
}

// Renew moves the due date and sets the renewed flag on an open, never
// renewed record. Returns domain.ErrNotFound if no such record exists.
func (r *Repo) Renew(ctx context.Context, id uuid.UUID, dueAt time.Time) (*domain.BorrowRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanLoan(querier.QueryRow(ctx, renewSQL, id, dueAt.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, postgres.MapError(err, "borrow_record", id)
	}
	return rec, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanLoan(row pgx.Row) (*domain.BorrowRecord, error) {
	var rec domain.BorrowRecord
	err := row.Scan(&rec.ID, &rec.BookID, &rec.MemberID, &rec.BorrowedAt, &rec.DueAt, &rec.ReturnedAt, &rec.Renewed)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
