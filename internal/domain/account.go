package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member is a library patron who can borrow books.
type Member struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Admin is a privileged account, created only through an approved verification token.
type Admin struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
