package payments

import (
	"github.com/stripe/stripe-go/v74/client"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/common"
)

// Client wraps the processor API client together with the webhook signing
// secret of the account.
type Client struct {
	*client.API
	apiKey         string
	webhookSignKey string
}

// NewClient initializes the processor client from the environment. An empty
// secret key is allowed here; the service refuses to create authorizations
// without one so the payment path degrades to an explicit "unavailable"
// state instead of a broken submission attempt.
func NewClient() *Client {
	return NewClientWithKeys(
		common.GetEnv("STRIPE_SECRET_KEY", ""),
		common.GetEnv("STRIPE_WEBHOOK_SIGN_KEY", ""),
	)
}

// NewClientWithKeys initializes the processor client with explicit secrets.
func NewClientWithKeys(apiKey, webhookSignKey string) *Client {
	var stripeClient client.API

	stripeClient.Init(apiKey, nil)

	return &Client{
		&stripeClient,
		apiKey,
		webhookSignKey,
	}
}

// Configured reports whether the processor secret key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}
