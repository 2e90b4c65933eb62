package domain

// BookStatus is derived from the number of available copies.
type BookStatus string

const (
	BookStatusAvailable BookStatus = "AVAILABLE"
	BookStatusBorrowed  BookStatus = "BORROWED"
)

func (s BookStatus) String() string { return string(s) }

func (s BookStatus) IsValid() bool {
	switch s {
	case BookStatusAvailable, BookStatusBorrowed:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// SubjectKind is the privileged action a verification token authorizes.
type SubjectKind string

const (
	SubjectKindAdmin SubjectKind = "admin"
)

func (k SubjectKind) String() string { return string(k) }

func (k SubjectKind) IsValid() bool {
	return k == SubjectKindAdmin
}

// NotificationKind is the closed set of outbound email messages.
type NotificationKind string

const (
	NotificationVerificationRequest NotificationKind = "VERIFICATION_REQUEST"
	NotificationApproval            NotificationKind = "APPROVAL_NOTIFICATION"
	NotificationRejection           NotificationKind = "REJECTION_NOTIFICATION"
	NotificationSubmissionApproval  NotificationKind = "SUBMISSION_APPROVAL_NOTIFICATION"
	NotificationSubmissionRejection NotificationKind = "SUBMISSION_REJECTION_NOTIFICATION"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationVerificationRequest, NotificationApproval, NotificationRejection,
		NotificationSubmissionApproval, NotificationSubmissionRejection:
		return true
	}
	return false
}

// SubmissionStatus is the review state of a member's book submission.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "PENDING"
	SubmissionStatusApproved  SubmissionStatus = "APPROVED"
	SubmissionStatusRejected  SubmissionStatus = "REJECTED"
	SubmissionStatusCancelled SubmissionStatus = "CANCELLED"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected, SubmissionStatusCancelled:
		return true
	}
	return false
}

// LoanState selects borrow records by lifecycle position.
type LoanState string

const (
	LoanStateOpen     LoanState = "open"
	LoanStateReturned LoanState = "returned"
	LoanStateOverdue  LoanState = "overdue"
)

func (s LoanState) String() string { return string(s) }

func (s LoanState) IsValid() bool {
	switch s {
	case LoanStateOpen, LoanStateReturned, LoanStateOverdue:
		return true
	}
	return false
}
