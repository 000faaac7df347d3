// Package handlers exposes the checkout orchestration HTTP surface.
package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/dal"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/leads"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/payments"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/session"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/common"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/logger"
)

// Checkout holds the request handlers for the checkout session API.
type Checkout struct {
	loggerProvider logger.Provider
	service        session.Service
	payments       *payments.Client
}

// NewCheckout wires the checkout service from the environment and starts the
// idle-session sweeper.
func NewCheckout(log logger.Provider) *Checkout {
	stripeClient := payments.NewClient()

	service := session.NewService(
		log,
		dal.NewSessionStore(),
		payments.NewService(log, stripeClient),
		leads.NewServiceFromEnv(),
		session.Config{
			AmountCents: priceFromEnv(),
			ThankYouURL: common.GetEnv("CHECKOUT_THANK_YOU_URL", fmt.Sprintf("https://%s/obrigado", common.Domain)),
		},
	)

	go service.RunSweeper(context.Background())

	return &Checkout{
		loggerProvider: log,
		service:        service,
		payments:       stripeClient,
	}
}

// NewCheckoutWithService wires the handlers with explicit collaborators.
func NewCheckoutWithService(log logger.Provider, service session.Service, stripeClient *payments.Client) *Checkout {
	return &Checkout{
		loggerProvider: log,
		service:        service,
		payments:       stripeClient,
	}
}

func priceFromEnv() int64 {
	raw := common.GetEnv("EVENT_PRICE_CENTS", "")
	if raw == "" {
		return consts.DefaultPriceCents
	}

	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || cents <= 0 {
		return consts.DefaultPriceCents
	}

	return cents
}
