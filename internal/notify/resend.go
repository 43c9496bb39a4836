package notify

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// ResendNotifier sends email through the Resend API.
type ResendNotifier struct {
	client *resend.Client
	from   string
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (n *ResendNotifier) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrapf(err, "sending email to %s", msg.To)
	}
	log.Printf("📧 Email sent successfully (ID: %s)", sent.Id)
	return nil
}

// New picks the Resend notifier when an API key is configured.
func New(apiKey, from string) Notifier {
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, emails will only be logged")
		return NewLogNotifier()
	}
	return NewResendNotifier(apiKey, from)
}
