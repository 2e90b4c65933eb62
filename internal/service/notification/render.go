package notification

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// DefaultRejectionComment is used when a reviewer rejects a submission
// without leaving a comment.
const DefaultRejectionComment = "Does not meet the catalogue criteria"

// Settings holds the addressing data Render needs besides the message.
type Settings struct {
	OperatorEmail  string
	ConfirmBaseURL string
}

// Email is a rendered message ready for the mailer.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Render turns a notification into an email. It is the only place message
// text is produced, so the queue consumer and the direct sender always send
// the same content for the same message.
func Render(msg domain.NotificationMessage, s Settings) (Email, error) {
	if err := msg.Validate(); err != nil {
		return Email{}, err
	}

	switch msg.Kind {
	case domain.NotificationVerificationRequest:
		token := url.QueryEscape(*msg.Comment)
		var b strings.Builder
		fmt.Fprintf(&b, "A new administrator account was requested by %s <%s>.\n\n", msg.Username, msg.Recipient)
		b.WriteString("Approve the registration:\n")
		fmt.Fprintf(&b, "%s?token=%s&action=approve\n\n", s.ConfirmBaseURL, token)
		b.WriteString("Reject the registration:\n")
		fmt.Fprintf(&b, "%s?token=%s&action=reject\n", s.ConfirmBaseURL, token)
		return Email{
			To:      s.OperatorEmail,
			Subject: "Administrator registration request",
			Body:    b.String(),
		}, nil

	case domain.NotificationApproval:
		return Email{
			To:      msg.Recipient,
			Subject: "Administrator registration approved",
			Body: fmt.Sprintf("Hello %s,\n\n"+
				"Your administrator account has been approved.\n"+
				"You can now sign in with administrator access.\n", msg.Username),
		}, nil

	case domain.NotificationRejection:
		return Email{
			To:      msg.Recipient,
			Subject: "Administrator registration declined",
			Body: fmt.Sprintf("Hello %s,\n\n"+
				"Your administrator registration request was not approved.\n"+
				"Please contact the library staff if you have questions.\n", msg.Username),
		}, nil

	case domain.NotificationSubmissionApproval:
		return Email{
			To:      msg.Recipient,
			Subject: "Book submission approved",
			Body: fmt.Sprintf("Hello %s,\n\n"+
				"Your submitted book %q has been approved and added to the catalogue.\n",
				msg.Username, deref(msg.BookTitle)),
		}, nil

	case domain.NotificationSubmissionRejection:
		comment := DefaultRejectionComment
		if msg.Comment != nil && strings.TrimSpace(*msg.Comment) != "" {
			comment = *msg.Comment
		}
		return Email{
			To:      msg.Recipient,
			Subject: "Book submission reviewed",
			Body: fmt.Sprintf("Hello %s,\n\n"+
				"Your submitted book %q was not accepted.\n"+
				"Reviewer comment: %s\n",
				msg.Username, deref(msg.BookTitle), comment),
		}, nil
	}

	return Email{}, domain.NewValidationError("kind", "unknown notification kind")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
