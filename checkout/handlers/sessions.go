package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/dal"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/payments"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/session"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/web"
)

// CreateSession opens a fresh checkout session at the lead step. The body is
// optional; attribution and behavior are captured when the client has them.
func (h *Checkout) CreateSession(ctx *gin.Context) error {
	var req openSessionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validate.Struct(req.Behavior); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	snapshot, err := h.service.Open(ctx, session.OpenInput{
		Locale:      req.Locale,
		Attribution: req.Attribution,
		Behavior:    req.Behavior.toDomain(),
	})
	if err != nil {
		return translateSessionError(err)
	}

	return web.Respond(ctx, snapshot, http.StatusCreated)
}

// GetSession returns the current render snapshot.
func (h *Checkout) GetSession(ctx *gin.Context) error {
	snapshot, err := h.service.Snapshot(ctx, ctx.Param("sessionID"))
	if err != nil {
		return translateSessionError(err)
	}

	return web.Respond(ctx, snapshot, http.StatusOK)
}

// SubmitLead validates the lead form, captures the lead and creates the
// payment authorization. Field-level failures come back as a structured
// payload the client maps onto the form.
func (h *Checkout) SubmitLead(ctx *gin.Context) error {
	var req submitLeadRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	input := session.LeadInput{
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.Phone,
	}

	if req.Behavior != nil {
		behavior := req.Behavior.toDomain()
		input.Behavior = &behavior
	}

	result, err := h.service.SubmitLead(ctx, ctx.Param("sessionID"), input)
	if err != nil {
		if ve, ok := session.AsValidationError(err); ok {
			return web.RespondValidationError(ctx, "validation failed", toFieldErrors(ve.Fields))
		}

		return translateSessionError(err)
	}

	return web.Respond(ctx, leadResponse{
		Snapshot:      result.Snapshot,
		ElementConfig: result.ElementConfig,
	}, http.StatusOK)
}

// ElementEvent folds an embedded payment element callback into the session.
func (h *Checkout) ElementEvent(ctx *gin.Context) error {
	var req elementEventRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	snapshot, err := h.service.ApplyElementEvent(ctx, ctx.Param("sessionID"), domain.ElementEvent{
		Type:     domain.ElementEventType(req.Type),
		Complete: req.Complete,
		Message:  req.Message,
	})
	if err != nil {
		return translateSessionError(err)
	}

	return web.Respond(ctx, snapshot, http.StatusOK)
}

// ConfirmSession applies the processor confirmation outcome reported by the
// client after the element confirms the payment.
func (h *Checkout) ConfirmSession(ctx *gin.Context) error {
	var req confirmRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	outcome := domain.ConfirmationOutcome{
		Status:        domain.AuthorizationStatus(req.Status),
		PaymentMethod: req.PaymentMethod,
		ErrorCode:     req.ErrorCode,
		ErrorMessage:  req.ErrorMessage,
	}

	if req.Voucher != nil {
		outcome.Voucher = &domain.VoucherDetails{
			Entity:    req.Voucher.Entity,
			Reference: req.Voucher.Reference,
			Amount:    req.Voucher.Amount,
		}
	}

	snapshot, err := h.service.Confirm(ctx, ctx.Param("sessionID"), outcome)
	if err != nil {
		return translateSessionError(err)
	}

	return web.Respond(ctx, snapshot, http.StatusOK)
}

// CloseSession dismisses the checkout session. Returns 409 while a redirect
// is pending.
func (h *Checkout) CloseSession(ctx *gin.Context) error {
	if err := h.service.Close(ctx, ctx.Param("sessionID")); err != nil {
		return translateSessionError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func toFieldErrors(fields []session.FieldViolation) []web.FieldError {
	out := make([]web.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, web.FieldError{Field: f.Field, Message: f.Message})
	}

	return out
}

func translateSessionError(err error) error {
	switch {
	case errors.Is(err, dal.ErrSessionNotFound):
		return web.NewRequestError(web.ErrNotFound, http.StatusNotFound)
	case errors.Is(err, session.ErrRedirectPending),
		errors.Is(err, session.ErrRequestInFlight),
		errors.Is(err, session.ErrLeadStepComplete),
		errors.Is(err, session.ErrNotInPaymentStep):
		return web.NewRequestError(err, http.StatusConflict)
	case errors.Is(err, session.ErrUnknownElementEvent):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, payments.ErrAuthorizationRejected):
		return web.NewRequestError(err, http.StatusPaymentRequired)
	case errors.Is(err, payments.ErrPaymentsUnavailable):
		return web.NewRequestError(err, http.StatusServiceUnavailable)
	case errors.Is(err, payments.ErrProcessorUnavailable):
		return web.NewRequestError(err, http.StatusBadGateway)
	default:
		return err
	}
}
