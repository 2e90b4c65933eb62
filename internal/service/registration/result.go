package registration

import (
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// RegisterResult reports what Register did. Exactly one of Member and
// Pending is set.
type RegisterResult struct {
	Member  *domain.Member
	Pending *AdminRequest
}

// AdminRequest is a recorded admin registration awaiting a decision.
// NotificationQueued is advisory: false means the operator may not have
// been told about the request.
type AdminRequest struct {
	Email              string
	Username           string
	ExpiresAt          time.Time
	NotificationQueued bool
}

// Decision is the outcome of deciding a verification token.
type Decision struct {
	Approved           bool
	Username           string
	Email              string
	Admin              *domain.Admin
	NotificationQueued bool
}
