package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedMember creates a member with a unique username and email.
func SeedMember(t *testing.T, pool *pgxpool.Pool) domain.Member {
	t.Helper()

	suffix := uniqueSuffix()
	m := domain.Member{
		ID:           uuid.New(),
		Username:     "member-" + suffix,
		Email:        "member-" + suffix + "@example.com",
		FullName:     "Member " + suffix,
		PasswordHash: "$2a$04$seedseedseedseedseedseOq8bq6H0r1N5c4m0R3wX8x7I6m2F1dS",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (id, username, email, full_name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Username, m.Email, m.FullName, m.PasswordHash, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}

	return m
}

// SeedAdmin creates an admin account with a unique username and email.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Admin {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Admin{
		ID:           uuid.New(),
		Username:     "admin-" + suffix,
		Email:        "admin-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seedseedseedseedseedseOq8bq6H0r1N5c4m0R3wX8x7I6m2F1dS",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO admins (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin insert: %v", err)
	}

	return a
}

// SeedBook creates a catalogue row with available = total.
func SeedBook(t *testing.T, pool *pgxpool.Pool, total int) domain.Book {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Book{
		ID:        uuid.New(),
		Title:     "Book " + suffix,
		Author:    "Author " + suffix,
		Category:  "fiction",
		Location:  "A-1",
		Total:     total,
		Available: total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, title, author, category, location, total, available, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.Title, b.Author, b.Category, b.Location, b.Total, b.Available, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook insert: %v", err)
	}

	return b
}

// SeedOpenLoan creates an open borrow record and takes one copy off the shelf.
func SeedOpenLoan(t *testing.T, pool *pgxpool.Pool, bookID, memberID uuid.UUID, due time.Time) domain.BorrowRecord {
	t.Helper()
	ctx := context.Background()

	r := domain.BorrowRecord{
		ID:         uuid.New(),
		BookID:     bookID,
		MemberID:   memberID,
		BorrowedAt: due.Add(-30 * 24 * time.Hour).UTC().Truncate(time.Microsecond),
		DueAt:      due.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO borrow_records (id, book_id, member_id, borrowed_at, due_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.BookID, r.MemberID, r.BorrowedAt, r.DueAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOpenLoan insert: %v", err)
	}

	if _, err := pool.Exec(ctx, `UPDATE books SET available = available - 1 WHERE id = $1`, bookID); err != nil {
		t.Fatalf("testhelper: SeedOpenLoan decrement: %v", err)
	}

	return r
}

// SeedVerificationToken stores an unused admin token created at createdAt with the given ttl.
func SeedVerificationToken(t *testing.T, pool *pgxpool.Pool, createdAt time.Time, ttl time.Duration) domain.VerificationToken {
	t.Helper()

	suffix := uniqueSuffix()
	tok := domain.VerificationToken{
		Token:        "tok-" + uuid.New().String(),
		Email:        "applicant-" + suffix + "@example.com",
		Username:     "applicant-" + suffix,
		PasswordHash: "$2a$04$seedseedseedseedseedseOq8bq6H0r1N5c4m0R3wX8x7I6m2F1dS",
		SubjectKind:  domain.SubjectKindAdmin,
		CreatedAt:    createdAt.UTC().Truncate(time.Microsecond),
		ExpiresAt:    createdAt.Add(ttl).UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO verification_tokens (token, email, username, password_hash, subject_kind, created_at, expires_at, used)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, false)`,
		tok.Token, tok.Email, tok.Username, tok.PasswordHash, string(tok.SubjectKind), tok.CreatedAt, tok.ExpiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVerificationToken insert: %v", err)
	}

	return tok
}
