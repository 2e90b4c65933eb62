// Package token implements the verification token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Repo provides verification-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tokenColumns = `token, email, username, password_hash, subject_kind, created_at, expires_at, used`

const createSQL = `
INSERT INTO verification_tokens (token, email, username, password_hash, subject_kind, created_at, expires_at, used)
VALUES ($1, $2, $3, $4, $5, $6, $7, false)
RETURNING ` + tokenColumns

const getSQL = `SELECT ` + tokenColumns + ` FROM verification_tokens WHERE token = $1`

const getForUpdateSQL = `SELECT ` + tokenColumns + ` FROM verification_tokens WHERE token = $1 FOR UPDATE`

const hasPendingSQL = `
SELECT EXISTS(
	SELECT 1 FROM verification_tokens
	WHERE email = $1 AND subject_kind = $2 AND NOT used
)`

const markUsedSQL = `UPDATE verification_tokens SET used = true WHERE token = $1 AND NOT used`

const deleteStaleSQL = `DELETE FROM verification_tokens WHERE NOT used AND created_at < $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create stores a new unused token. A second unused token for the same
// (email, subject kind) violates ux_verification_tokens_pending and maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.VerificationToken) (*domain.VerificationToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		t.Token, t.Email, t.Username, t.PasswordHash, string(t.SubjectKind),
		t.CreatedAt.UTC().Truncate(time.Microsecond),
		t.ExpiresAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "verification_token", t.Email)
	}
	return created, nil
}

// Get returns a token by its value.
func (r *Repo) Get(ctx context.Context, token string) (*domain.VerificationToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(querier.QueryRow(ctx, getSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "verification_token", redact(token))
	}
	return t, nil
}

// GetForUpdate returns a token and locks its row until the surrounding
// transaction ends, so two concurrent decisions serialize on it.
func (r *Repo) GetForUpdate(ctx context.Context, token string) (*domain.VerificationToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(querier.QueryRow(ctx, getForUpdateSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "verification_token", redact(token))
	}
	return t, nil
}

// HasPending reports whether an unused token exists for the email and kind.
func (r *Repo) HasPending(ctx context.Context, email string, kind domain.SubjectKind) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, hasPendingSQL, email, string(kind)).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "verification_token", email)
	}
	return exists, nil
}

// MarkUsed flips the used flag. Returns domain.ErrNotFound if the token is
// missing or was already used.
func (r *Repo) MarkUsed(ctx context.Context, token string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markUsedSQL, token)
	if err != nil {
		return postgres.MapError(err, "verification_token", redact(token))
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("verification_token %s: %w", redact(token), domain.ErrNotFound)
	}
	return nil
}

// DeleteStale removes unused tokens created before cutoff.
// Returns the count of deleted tokens.
func (r *Repo) DeleteStale(ctx context.Context, cutoff time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteStaleSQL, cutoff.UTC())
	if err != nil {
		return 0, postgres.MapError(err, "verification_token", "stale")
	}
	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanToken(row pgx.Row) (*domain.VerificationToken, error) {
	var (
		t    domain.VerificationToken
		kind string
	)
	err := row.Scan(&t.Token, &t.Email, &t.Username, &t.PasswordHash, &kind, &t.CreatedAt, &t.ExpiresAt, &t.Used)
	if err != nil {
		return nil, err
	}
	t.SubjectKind = domain.SubjectKind(kind)
	return &t, nil
}

// redact keeps token values out of error messages and logs.
func redact(token string) string {
	if len(token) <= 6 {
		return "***"
	}
	return token[:6] + "***"
}
