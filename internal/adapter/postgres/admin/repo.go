// Package admin implements the administrator account repository using PostgreSQL.
package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides admin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const adminColumns = `id, username, email, password_hash, created_at`

const createSQL = `
INSERT INTO admins (id, username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING ` + adminColumns

const getByIDSQL = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

const getByUsernameSQL = `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1 OR email = $2)`

// GetByID returns an admin by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAdmin(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "admin", id)
	}
	return a, nil
}

// GetByUsername returns an admin by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAdmin(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "admin", username)
	}
	return a, nil
}

// ExistsByUsernameOrEmail reports whether either identifier is taken by an admin.
func (r *Repo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, username, email).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "admin", username)
	}
	return exists, nil
}

// Create inserts a new admin. A taken username or email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL, a.ID, a.Username, a.Email, a.PasswordHash)

	created, err := scanAdmin(row)
	if err != nil {
		return nil, postgres.MapError(err, "admin", a.ID)
	}
	return created, nil
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
