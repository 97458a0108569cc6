package notify

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier sends confirmation SMS through the Twilio REST API.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(cfg config.TwilioConfig) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioNotifier{client: client, from: cfg.FromNumber}
}

func (n *TwilioNotifier) Send(ctx context.Context, to, body string) error {
	_ = ctx // the Twilio SDK does not take a context

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return errs.Wrap(err, "failed to send SMS")
	}

	if msg.Sid != nil {
		slog.Info("SMS notification sent", "twilio_sid", *msg.Sid)
	}
	return nil
}
