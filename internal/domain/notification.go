package domain

// NotificationMessage describes one email to send. It has no identity of its
// own, so a redelivered message is indistinguishable from the original.
type NotificationMessage struct {
	Kind      NotificationKind `json:"kind"`
	Recipient string           `json:"recipient"`
	Username  string           `json:"username"`
	BookTitle *string          `json:"bookTitle,omitempty"`
	Comment   *string          `json:"comment,omitempty"`
}

// PartitionKey is the ordering key on the queue. Messages about the same
// applicant share it, so a decision is never seen before its request.
func (m NotificationMessage) PartitionKey() string {
	if m.Username != "" {
		return m.Username
	}
	return m.Recipient
}

// Validate checks the fields every kind needs.
func (m NotificationMessage) Validate() error {
	var errs []FieldError
	if !m.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown notification kind"})
	}
	if m.Recipient == "" {
		errs = append(errs, FieldError{Field: "recipient", Message: "required"})
	}
	if m.Kind == NotificationVerificationRequest && (m.Comment == nil || *m.Comment == "") {
		errs = append(errs, FieldError{Field: "comment", Message: "verification token required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
