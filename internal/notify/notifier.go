package notify

import (
	"context"
	"fmt"

	"college-feedback-backend/internal/models"
)

// Message is a single email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier delivers messages to users. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// ApprovalMessage tells a user that an administrator approved their account.
func ApprovalMessage(user *models.User) Message {
	return Message{
		To:      user.Email,
		Subject: "Your feedback portal account has been approved",
		HTML: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Hello %s,</h2>
				<p>Your account has been approved. You can now log in and submit your course feedback.</p>
				<p style="color: #aaa; font-size: 12px;">
					If you did not register, please contact the administration office.
				</p>
			</div>
		`, user.Username),
	}
}
