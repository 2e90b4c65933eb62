// Package submission implements the book submission repository using PostgreSQL.
package submission

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides book submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const submissionColumns = `id, member_id, title, author, category, isbn, publisher, publish_year,
	description, status, review_comment, reviewed_by, reviewed_at, created_book_id, created_at`

const createSQL = `
INSERT INTO book_submissions (id, member_id, title, author, category, isbn, publisher,
	publish_year, description, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'PENDING', now())
RETURNING ` + submissionColumns

const getByIDSQL = `SELECT ` + submissionColumns + ` FROM book_submissions WHERE id = $1`

const getForUpdateSQL = `SELECT ` + submissionColumns + ` FROM book_submissions WHERE id = $1 FOR UPDATE`

const updateStatusSQL = `
UPDATE book_submissions
SET status = $2, review_comment = $3, reviewed_by = $4, reviewed_at = $5, created_book_id = $6
WHERE id = $1
RETURNING ` + submissionColumns

const countPendingSQL = `SELECT count(*) FROM book_submissions WHERE status = 'PENDING'`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSubmission(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "book_submission", id)
	}
	return s, nil
}

// GetForUpdate returns a submission and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSubmission(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "book_submission", id)
	}
	return s, nil
}

// CountPending returns the number of submissions awaiting review.
func (r *Repo) CountPending(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countPendingSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending submissions: %w", err)
	}
	return n, nil
}

// List returns submissions matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.SubmissionFilter) ([]domain.BookSubmission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Select(submissionColumns).From("book_submissions").OrderBy("created_at DESC", "id")
	if f.MemberID != nil {
		q = q.Where(sq.Eq{"member_id": *f.MemberID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list submissions query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.BookSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

// Create inserts a PENDING submission.
func (r *Repo) Create(ctx context.Context, s *domain.BookSubmission) (*domain.BookSubmission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		s.ID, s.MemberID, s.Title, s.Author, s.Category, s.ISBN, s.Publisher, s.PublishYear, s.Description,
	)

	created, err := scanSubmission(row)
	if err != nil {
		return nil, postgres.MapError(err, "book_submission", s.ID)
	}
	return created, nil
}

// UpdateStatus persists the review outcome fields of s.
func (r *Repo) UpdateStatus(ctx context.Context, s *domain.BookSubmission) (*domain.BookSubmission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateStatusSQL,
		s.ID, string(s.Status), s.ReviewComment, s.ReviewedBy, s.ReviewedAt, s.CreatedBookID,
	)

	updated, err := scanSubmission(row)
	if err != nil {
		return nil, postgres.MapError(err, "book_submission", s.ID)
	}
	return updated, nil
}

func scanSubmission(row pgx.Row) (*domain.BookSubmission, error) {
	var (
		s      domain.BookSubmission
		status string
	)
	err := row.Scan(
		&s.ID, &s.MemberID, &s.Title, &s.Author, &s.Category, &s.ISBN, &s.Publisher, &s.PublishYear,
		&s.Description, &status, &s.ReviewComment, &s.ReviewedBy, &s.ReviewedAt, &s.CreatedBookID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = domain.SubmissionStatus(status)
	return &s, nil
}
