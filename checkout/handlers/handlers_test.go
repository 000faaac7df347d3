package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/dal"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/payments"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/session"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/session/mocks"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/mid"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/web"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/logger"
)

const testWebhookSecret = "whsec_test_secret"

func newTestCheckout(t *testing.T) (*Checkout, *mocks.Service) {
	service := mocks.NewService(t)

	h := NewCheckoutWithService(
		logger.FromContext,
		service,
		payments.NewClientWithKeys("sk_test_123", testWebhookSecret),
	)

	return h, service
}

func newTestApp(h *Checkout) *web.App {
	app := web.NewTestApp(nil, mid.Errors())

	app.Post("/checkout/sessions", h.CreateSession)
	app.Get("/checkout/sessions/:sessionID", h.GetSession)
	app.Post("/checkout/sessions/:sessionID/lead", h.SubmitLead)
	app.Post("/checkout/sessions/:sessionID/events", h.ElementEvent)
	app.Post("/checkout/sessions/:sessionID/confirm", h.ConfirmSession)
	app.Delete("/checkout/sessions/:sessionID", h.CloseSession)
	app.Post("/webhooks/stripe", h.StripeWebhook)

	return app
}

func doJSON(app *web.App, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer

	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	app.ServeHTTP(recorder, req)

	return recorder
}

func TestCreateSession(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("Open", mock.Anything, mock.MatchedBy(func(input session.OpenInput) bool {
		return input.Attribution.UTMSource == "instagram"
	})).Return(&domain.Snapshot{
		SessionID:     "s1",
		Step:          domain.StepLead,
		SubmitEnabled: true,
	}, nil).Once()

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions", map[string]any{
		"attribution": map[string]string{"utm_source": "instagram"},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &snap))
	assert.Equal(t, "s1", snap.SessionID)
	assert.Equal(t, domain.StepLead, snap.Step)
}

func TestCreateSessionRejectsOutOfRangeBehavior(t *testing.T) {
	h, _ := newTestCheckout(t)
	app := newTestApp(h)

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions", map[string]any{
		"behavior": map[string]int{"scroll_depth_pct": 150},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("Snapshot", mock.Anything, "missing").
		Return(nil, dal.ErrSessionNotFound).Once()

	recorder := doJSON(app, http.MethodGet, "/checkout/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSubmitLeadFieldErrors(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("SubmitLead", mock.Anything, "s1", mock.Anything).
		Return(nil, &session.ValidationError{
			Fields: []session.FieldViolation{
				{Field: "fullName", Message: "O nome não pode conter números nem '@'. Parece um email — confirme o campo."},
			},
		}).Once()

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions/s1/lead", map[string]string{
		"fullName": "João Silva123@test",
		"email":    "joao@exemplo.pt",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp web.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.FieldErrors, 1)
	assert.Equal(t, "fullName", resp.FieldErrors[0].Field)
	assert.Contains(t, resp.FieldErrors[0].Message, "Parece um email")
}

func TestSubmitLeadAdvances(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("SubmitLead", mock.Anything, "s1", mock.MatchedBy(func(input session.LeadInput) bool {
		return input.Email == "maria@exemplo.pt" && input.PhoneCountryCode == "+351"
	})).Return(&session.LeadResult{
		Snapshot: &domain.Snapshot{SessionID: "s1", Step: domain.StepPayment},
	}, nil).Once()

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions/s1/lead", map[string]string{
		"fullName":         "Maria Santos",
		"email":            "maria@exemplo.pt",
		"phoneCountryCode": "+351",
		"phone":            "912345678",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp leadResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, domain.StepPayment, resp.Snapshot.Step)
}

func TestElementEventInvalidType(t *testing.T) {
	h, _ := newTestCheckout(t)
	app := newTestApp(h)

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions/s1/events", map[string]string{
		"type": "explode",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConfirmSession(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("Confirm", mock.Anything, "s1", mock.MatchedBy(func(outcome domain.ConfirmationOutcome) bool {
		return outcome.Status == domain.AuthorizationStatusProcessing &&
			outcome.Voucher != nil &&
			outcome.Voucher.Reference == "123456789"
	})).Return(&domain.Snapshot{
		SessionID:       "s1",
		Step:            domain.StepSuccess,
		Outcome:         domain.OutcomeAsyncPending,
		PendingRedirect: true,
	}, nil).Once()

	recorder := doJSON(app, http.MethodPost, "/checkout/sessions/s1/confirm", map[string]any{
		"status":         "processing",
		"payment_method": "multibanco",
		"voucher": map[string]any{
			"entity":    "12345",
			"reference": "123456789",
			"amount":    18000,
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &snap))
	assert.True(t, snap.PendingRedirect)
}

func TestCloseSessionRefusedWhilePendingRedirect(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("Close", mock.Anything, "s1").
		Return(session.ErrRedirectPending).Once()

	recorder := doJSON(app, http.MethodDelete, "/checkout/sessions/s1", nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCloseSession(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("Close", mock.Anything, "s1").Return(nil).Once()

	recorder := doJSON(app, http.MethodDelete, "/checkout/sessions/s1", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func signWebhookPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)

	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhook(t *testing.T) {
	h, service := newTestCheckout(t)
	app := newTestApp(h)

	service.On("HandleProcessorEvent", mock.Anything, session.ProcessorEvent{
		Type:            "payment_intent.succeeded",
		AuthorizationID: "pi_123",
	}).Return(nil).Once()

	payload := []byte(`{
		"id": "evt_1",
		"api_version": "2022-11-15",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_123", "object": "payment_intent"}}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signWebhookPayload(payload, testWebhookSecret))

	recorder := httptest.NewRecorder()
	app.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	h, _ := newTestCheckout(t)
	app := newTestApp(h)

	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded", "data": {"object": {}}}`)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")

	recorder := httptest.NewRecorder()
	app.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
