// Package payments creates payment authorizations against the processor.
// Creation is the blocking half of the checkout flow: step 2 cannot begin
// until it resolves.
package payments

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/logger"
)

//go:generate mockery --name Service --output ./mocks
type Service interface {
	CreateAuthorization(ctx context.Context, input CreateAuthorizationInput) (*domain.PaymentAuthorization, error)
}

// CreateAuthorizationInput carries one payment-intent creation attempt.
// IdempotencyToken must be freshly generated per attempt and never reused
// across attempts.
type CreateAuthorizationInput struct {
	Lead             domain.LeadRecord
	Amount           int64
	Currency         string
	IdempotencyToken string
	EventID          string
	PageSlug         string
}

type service struct {
	loggerProvider logger.Provider
	stripeClient   *Client
}

func NewService(loggerProvider logger.Provider, stripeClient *Client) Service {
	return &service{
		loggerProvider: loggerProvider,
		stripeClient:   stripeClient,
	}
}

// CreateAuthorization creates a payment intent with the attempt's
// idempotency token, so a duplicate submission of the same attempt cannot
// produce a second charge. The returned authorization is immutable.
func (s *service) CreateAuthorization(ctx context.Context, input CreateAuthorizationInput) (*domain.PaymentAuthorization, error) {
	l := s.loggerProvider(ctx)

	if !s.stripeClient.Configured() {
		return nil, ErrPaymentsUnavailable
	}

	if input.Amount < 50 {
		return nil, ErrInvalidAmount
	}

	params := buildAuthorizationParams(input)
	params.SetIdempotencyKey(input.IdempotencyToken)

	pi, err := s.stripeClient.PaymentIntents.New(params)
	if err != nil {
		l.Errorf("payment intent creation failed for lead %s: %s", input.Lead.LeadID, err)
		return nil, translateProcessorError(err)
	}

	l.Infof("payment intent %s created for lead %s (event %s)", pi.ID, input.Lead.LeadID, input.EventID)

	return &domain.PaymentAuthorization{
		ClientSecret:    pi.ClientSecret,
		AuthorizationID: pi.ID,
		EventID:         input.EventID,
		Status:          mapIntentStatus(pi.Status),
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
	}, nil
}

func buildAuthorizationParams(input CreateAuthorizationInput) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(input.Amount),
		Currency:           stripe.String(input.Currency),
		PaymentMethodTypes: stripe.StringSlice(consts.PaymentMethodOrder),
		ReceiptEmail:       stripe.String(input.Lead.Email),
		Description:        stripe.String(input.PageSlug),
	}

	params.AddMetadata("lead_id", input.Lead.LeadID)
	params.AddMetadata("event_id", input.EventID)
	params.AddMetadata("full_name", input.Lead.FullName)
	params.AddMetadata("email", input.Lead.Email)
	params.AddMetadata("phone", input.Lead.PhoneCountryCode+input.Lead.PhoneNumber)
	params.AddMetadata("page_slug", input.PageSlug)

	return params
}

// mapIntentStatus narrows the processor status set to the values the state
// machine reacts to.
func mapIntentStatus(status stripe.PaymentIntentStatus) domain.AuthorizationStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.AuthorizationStatusSucceeded
	case stripe.PaymentIntentStatusProcessing:
		return domain.AuthorizationStatusProcessing
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		return domain.AuthorizationStatusRequiresAction
	default:
		return domain.AuthorizationStatusRequiresPaymentMethod
	}
}

// translateProcessorError separates rejections (the request reached the
// processor and was refused) from transient failures the caller may retry
// with a fresh idempotency token.
func translateProcessorError(err error) error {
	stripeErr, ok := err.(*stripe.Error)
	if !ok {
		return ErrProcessorUnavailable
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
		return &RejectionError{
			Param: stripeErr.Param,
			Code:  string(stripeErr.Code),
		}
	default:
		return ErrProcessorUnavailable
	}
}
