package domain

import "time"

// VerificationToken grants creation of one privileged account.
// Used moves false to true exactly once.
type VerificationToken struct {
	Token        string
	Email        string
	Username     string
	PasswordHash string
	SubjectKind  SubjectKind
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Used         bool
}

// IsExpired returns true once now is past the expiry instant.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// CheckDecidable returns the reason the token cannot be decided, or nil.
// Checks run in the order callers need to distinguish them.
func (t *VerificationToken) CheckDecidable(now time.Time) error {
	if t.Used {
		return ErrAlreadyUsed
	}
	if t.IsExpired(now) {
		return ErrExpired
	}
	if t.SubjectKind != SubjectKindAdmin {
		return ErrWrongSubjectKind
	}
	return nil
}
