package payments

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

// ConstructEvent verifies the webhook signature and parses the event body.
func (c *Client) ConstructEvent(body []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(body, signature, c.webhookSignKey)
	if err != nil {
		return stripe.Event{}, ErrInvalidSignature
	}

	return event, nil
}
