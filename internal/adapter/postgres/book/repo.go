// Package book implements the catalogue repository using PostgreSQL.
// Status is a generated column and is never written.
package book

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

// Repo provides catalogue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const bookColumns = `id, title, author, category, isbn, publisher, publish_year,
	location, introduction, total, available, created_at, updated_at`

const createSQL = `
INSERT INTO books (id, title, author, category, isbn, publisher, publish_year,
	location, introduction, total, available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + bookColumns

const getByIDSQL = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

const getForUpdateSQL = `SELECT ` + bookColumns + ` FROM books WHERE id = $1 FOR UPDATE`

const setAvailableSQL = `
UPDATE books SET available = $2, updated_at = now()
WHERE id = $1
RETURNING ` + bookColumns

const deleteSQL = `DELETE FROM books WHERE id = $1`

const countSQL = `SELECT count(*) FROM books`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// GetForUpdate returns a book and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// Count returns the number of catalogue rows.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// List returns catalogue rows ordered by newest first.
func (r *Repo) List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Select(bookColumns).From("books").OrderBy("created_at DESC", "id")
	if f.Category != nil {
		q = q.Where(sq.Eq{"category": *f.Category})
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
		return nil, fmt.Errorf("build list books query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new catalogue row. It never merges with an existing title.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL,
		b.ID, b.Title, b.Author, b.Category, b.ISBN, b.Publisher, b.PublishYear,
		b.Location, b.Introduction, b.Total, b.Available, now,
	)

	created, err := scanBook(row)
	if err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}
	return created, nil
}

// SetAvailable writes a new available-copy count. The CHECK constraint
// rejects values outside [0, total] with domain.ErrValidation.
func (r *Repo) SetAvailable(ctx context.Context, id uuid.UUID, available int) (*domain.Book, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(querier.QueryRow(ctx, setAvailableSQL, id, available))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// Delete removes a catalogue row and its closed loan history.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.ISBN, &b.Publisher, &b.PublishYear,
		&b.Location, &b.Introduction, &b.Total, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
