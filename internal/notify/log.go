package notify

import (
	"context"
	"log"
)

// LogNotifier writes messages to the process log instead of sending them.
// It is used when no email provider is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	log.Printf("📧 [Dev Mode] Email to %s: %s", msg.To, msg.Subject)
	return nil
}
