package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/session"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/web"
)

// StripeWebhook ingests signed processor events for out-of-band
// reconciliation. Unsigned or tampered payloads are rejected before parsing.
func (h *Checkout) StripeWebhook(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	event, err := h.payments.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		l.Errorf("unparseable payload for processor event %s (%s): %s", event.ID, event.Type, err)

		// Acknowledge so the processor does not retry a payload we can
		// never parse.
		return web.Respond(ctx, gin.H{"received": true}, http.StatusOK)
	}

	processorEvent := session.ProcessorEvent{
		Type:            event.Type,
		AuthorizationID: intent.ID,
	}

	if intent.LastPaymentError != nil {
		processorEvent.ErrorCode = string(intent.LastPaymentError.Code)
	}

	if err := h.service.HandleProcessorEvent(ctx, processorEvent); err != nil {
		return err
	}

	return web.Respond(ctx, gin.H{"received": true}, http.StatusOK)
}
