package registration

import (
	"net/mail"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// AccountType selects what Register creates.
type AccountType string

const (
	AccountMember AccountType = "member"
	AccountAdmin  AccountType = "admin"
)

// RegisterInput holds the parameters for a new account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	AccountType AccountType
}

// Validate checks all fields and collects all errors.
// Expects Email and Username to be normalized already.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) < 3 || len(i.Username) > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-50 characters"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(i.FullName) > 100 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 100 characters"})
	}

	switch i.AccountType {
	case "", AccountMember, AccountAdmin:
	default:
		errs = append(errs, domain.FieldError{Field: "account_type", Message: "must be member or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
