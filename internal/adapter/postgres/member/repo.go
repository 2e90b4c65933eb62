// Package member implements the library member repository using PostgreSQL.
package member

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides member persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const memberColumns = `id, username, email, full_name, password_hash, created_at`

const createSQL = `
INSERT INTO members (id, username, email, full_name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING ` + memberColumns

const getByIDSQL = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

const getByUsernameSQL = `SELECT ` + memberColumns + ` FROM members WHERE username = $1`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM members WHERE username = $1 OR email = $2)`

const countSQL = `SELECT count(*) FROM members`

// GetByID returns a member by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}
	return m, nil
}

// GetByUsername returns a member by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "member", username)
	}
	return m, nil
}

// ExistsByUsernameOrEmail reports whether either identifier is taken by a member.
func (r *Repo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, username, email).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "member", username)
	}
	return exists, nil
}

// Count returns the number of members.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// Create inserts a new member. A taken username or email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, m.ID, m.Username, m.Email, m.FullName, m.PasswordHash)

	created, err := scanMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "member", m.ID)
	}
	return created, nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(&m.ID, &m.Username, &m.Email, &m.FullName, &m.PasswordHash, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
