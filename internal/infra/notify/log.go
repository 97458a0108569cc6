package notify

import (
	"context"
	"log/slog"
)

// LogNotifier stands in when no Twilio credentials are configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, to, body string) error {
	_ = ctx
	slog.Info("SMS notification (log only)", "to", to, "body", body)
	return nil
}
