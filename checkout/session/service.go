// Package session owns the checkout session lifecycle: the explicit state
// machine from lead capture through payment confirmation to the scheduled
// confirmation-page redirect.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/dal"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/elements"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/identity"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/leads"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/payments"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/redirect"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/validation"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/logger"
)

const leadCaptureTimeout = 30 * time.Second

// Processor event types the session service reacts to.
const (
	ProcessorEventSucceeded = "payment_intent.succeeded"
	ProcessorEventFailed    = "payment_intent.payment_failed"
)

//go:generate mockery --name Service --output ./mocks
type Service interface {
	Open(ctx context.Context, input OpenInput) (*domain.Snapshot, error)
	Snapshot(ctx context.Context, sessionID string) (*domain.Snapshot, error)
	SubmitLead(ctx context.Context, sessionID string, input LeadInput) (*LeadResult, error)
	ApplyElementEvent(ctx context.Context, sessionID string, event domain.ElementEvent) (*domain.Snapshot, error)
	Confirm(ctx context.Context, sessionID string, outcome domain.ConfirmationOutcome) (*domain.Snapshot, error)
	Close(ctx context.Context, sessionID string) error
	HandleProcessorEvent(ctx context.Context, event ProcessorEvent) error
	RunSweeper(ctx context.Context)
}

// Config carries the offer parameters the service charges and redirects with.
type Config struct {
	AmountCents int64
	Currency    string
	Locale      string
	PageSlug    string
	ThankYouURL string
}

// OpenInput carries the acquisition context captured when the checkout modal
// opens.
type OpenInput struct {
	Locale      string
	Attribution domain.Attribution
	Behavior    domain.BehaviorSnapshot
}

// LeadInput is the raw lead form submission. Values are validated first and
// sanitized before storage.
type LeadInput struct {
	FullName         string
	Email            string
	PhoneCountryCode string
	PhoneNumber      string
	Behavior         *domain.BehaviorSnapshot
}

// LeadResult is the step advance payload: the new snapshot plus the element
// configuration the client mounts exactly once per authorization.
type LeadResult struct {
	Snapshot      *domain.Snapshot
	ElementConfig *elements.Config
}

// ProcessorEvent is a verified out-of-band processor notification.
type ProcessorEvent struct {
	Type            string
	AuthorizationID string
	ErrorCode       string
}

type service struct {
	loggerProvider logger.Provider
	sessions       dal.Sessions
	payments       payments.Service
	leads          leads.Service
	scheduler      *redirect.Scheduler
	config         Config
}

func NewService(
	loggerProvider logger.Provider,
	sessions dal.Sessions,
	paymentsService payments.Service,
	leadsService leads.Service,
	config Config,
) Service {
	if config.AmountCents == 0 {
		config.AmountCents = consts.DefaultPriceCents
	}

	if config.Currency == "" {
		config.Currency = consts.DefaultCurrency
	}

	if config.Locale == "" {
		config.Locale = consts.DefaultLocale
	}

	if config.PageSlug == "" {
		config.PageSlug = consts.EventSlug
	}

	s := &service{
		loggerProvider: loggerProvider,
		sessions:       sessions,
		payments:       paymentsService,
		leads:          leadsService,
		config:         config,
	}

	s.scheduler = redirect.NewScheduler(s.redirectDue)

	return s
}

// Open creates a fresh checkout session at the lead step.
func (s *service) Open(ctx context.Context, input OpenInput) (*domain.Snapshot, error) {
	l := s.loggerProvider(ctx)

	locale := input.Locale
	if locale == "" {
		locale = s.config.Locale
	}

	sess := &domain.CheckoutSession{
		ID:            uuid.NewString(),
		Step:          domain.StepLead,
		Locale:        locale,
		Attribution:   input.Attribution,
		Behavior:      input.Behavior,
		SubmitEnabled: true,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	l.Infof("checkout session %s opened (locale %s)", sess.ID, locale)

	return sess.View(), nil
}

// Snapshot returns the current render snapshot for a session.
func (s *service) Snapshot(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return sess.View(), nil
}

// SubmitLead validates and captures the lead, then creates the payment
// authorization that advances the session to the payment step. The in-flight
// guard is claimed atomically so concurrent submissions cannot race a second
// authorization; every attempt gets a fresh idempotency token.
func (s *service) SubmitLead(ctx context.Context, sessionID string, input LeadInput) (*LeadResult, error) {
	l := s.loggerProvider(ctx)

	if ve := validateLead(input); ve != nil {
		return nil, ve
	}

	lead := domain.LeadRecord{
		FullName:         validation.SanitizeFullName(input.FullName),
		Email:            validation.SanitizeEmail(input.Email),
		PhoneCountryCode: strings.TrimSpace(input.PhoneCountryCode),
		PhoneNumber:      validation.SanitizePhone(input.PhoneNumber),
	}

	token := identity.NewIdempotencyToken()
	eventID := identity.NewEventID()

	var capture leads.CaptureInput

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepLead {
			return ErrLeadStepComplete
		}

		if sess.RequestInFlight {
			return ErrRequestInFlight
		}

		// The lead id is stable across retry attempts within the session.
		if sess.Lead != nil {
			lead.LeadID = sess.Lead.LeadID
		} else {
			lead.LeadID = identity.NewLeadID()
		}

		sess.Lead = &lead

		if input.Behavior != nil {
			sess.Behavior = *input.Behavior
		}

		sess.IdempotencyToken = token
		sess.RequestInFlight = true
		sess.SubmitEnabled = false
		sess.Banner = ""

		capture = leads.CaptureInput{
			Lead:        lead,
			Attribution: sess.Attribution,
			Behavior:    sess.Behavior,
			EventID:     eventID,
			PageSlug:    s.config.PageSlug,
		}

		return nil
	}); err != nil {
		return nil, err
	}

	// CRM capture never blocks the payment path and never fails it.
	go func() {
		captureCtx, cancel := context.WithTimeout(context.Background(), leadCaptureTimeout)
		defer cancel()

		if err := s.leads.CaptureLead(captureCtx, capture); err != nil {
			l.Errorf("lead capture for %s failed: %s", lead.LeadID, err)
		}
	}()

	auth, err := s.payments.CreateAuthorization(ctx, payments.CreateAuthorizationInput{
		Lead:             lead,
		Amount:           s.config.AmountCents,
		Currency:         s.config.Currency,
		IdempotencyToken: token,
		EventID:          eventID,
		PageSlug:         s.config.PageSlug,
	})
	if err != nil {
		banner := bannerForAuthorizationError(err)

		if _, updateErr := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
			sess.RequestInFlight = false
			sess.SubmitEnabled = true
			sess.Banner = banner

			return nil
		}); updateErr != nil {
			l.Errorf("releasing in-flight guard for session %s: %s", sessionID, updateErr)
		}

		// Structural rejections naming a lead parameter go back to the
		// originating form field instead of the banner.
		if fieldErr := rejectedFieldViolation(err); fieldErr != nil {
			return nil, &ValidationError{Fields: []FieldViolation{*fieldErr}}
		}

		return nil, err
	}

	committed, err := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		sess.RequestInFlight = false
		sess.Authorization = auth
		sess.ElementMounted = false
		sess.ElementComplete = false
		sess.MountFailed = false
		sess.SubmitEnabled = false

		return fireTransition(sess, triggerPaymentReady)
	})
	if err != nil {
		return nil, err
	}

	l.Infof("session %s advanced to payment step (authorization %s)", sessionID, auth.AuthorizationID)

	return &LeadResult{
		Snapshot:      committed.View(),
		ElementConfig: elements.BuildConfig(auth, committed.Locale, committed.Lead),
	}, nil
}

// ApplyElementEvent folds an embedded payment element callback into session
// state. The submit control strictly tracks element completeness.
func (s *service) ApplyElementEvent(ctx context.Context, sessionID string, event domain.ElementEvent) (*domain.Snapshot, error) {
	l := s.loggerProvider(ctx)

	updated, err := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepPayment {
			return ErrNotInPaymentStep
		}

		switch event.Type {
		case domain.ElementEventReady:
			sess.ElementMounted = true
			sess.MountFailed = false
		case domain.ElementEventChange:
			sess.ElementComplete = event.Complete
		case domain.ElementEventFocus:
			sess.Banner = ""
		case domain.ElementEventMountFailed:
			sess.MountFailed = true
			sess.ElementMounted = false
			sess.Banner = messageMountFailed
		default:
			return ErrUnknownElementEvent
		}

		sess.SubmitEnabled = sess.ElementMounted && sess.ElementComplete && !sess.MountFailed && !sess.RequestInFlight

		return nil
	})
	if err != nil {
		return nil, err
	}

	if event.Type == domain.ElementEventMountFailed {
		l.Errorf("payment element mount failed for session %s: %s", sessionID, event.Message)
	}

	return updated.View(), nil
}

// Confirm applies the processor confirmation outcome. Success arms the
// deferred redirect; a failure re-enters the payment step with a localized
// banner and leaves the session retryable.
func (s *service) Confirm(ctx context.Context, sessionID string, outcome domain.ConfirmationOutcome) (*domain.Snapshot, error) {
	l := s.loggerProvider(ctx)

	var (
		delay time.Duration
		armed bool
	)

	updated, err := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepPayment {
			return ErrNotInPaymentStep
		}

		if outcome.Failed() {
			sess.Banner = LocalizedProcessorMessage(outcome.ErrorCode)
			sess.SubmitEnabled = sess.ElementMounted && sess.ElementComplete

			return fireTransition(sess, triggerConfirmFailed)
		}

		switch outcome.Status {
		case domain.AuthorizationStatusSucceeded:
			if err := fireTransition(sess, triggerConfirmSucceeded); err != nil {
				return err
			}

			sess.Outcome = domain.OutcomeImmediate
		case domain.AuthorizationStatusProcessing, domain.AuthorizationStatusRequiresAction:
			if err := fireTransition(sess, triggerConfirmPending); err != nil {
				return err
			}

			sess.Outcome = domain.OutcomeAsyncPending
			sess.Voucher = outcome.Voucher
		default:
			sess.Banner = messageGenericDecline
			sess.SubmitEnabled = sess.ElementMounted && sess.ElementComplete

			return fireTransition(sess, triggerConfirmFailed)
		}

		destination := redirect.Destination{
			Status:        outcome.Status,
			PaymentMethod: outcome.PaymentMethod,
			Voucher:       sess.Voucher,
		}

		if sess.Authorization != nil {
			destination.AuthorizationID = sess.Authorization.AuthorizationID
		}

		if sess.Lead != nil {
			destination.LeadID = sess.Lead.LeadID
		}

		destinationURL, err := redirect.BuildDestinationURL(s.config.ThankYouURL, destination)
		if err != nil {
			return err
		}

		sess.RedirectURL = destinationURL
		sess.PendingRedirect = true
		sess.SubmitEnabled = false
		sess.Banner = ""
		delay = redirect.DelayFor(sess.Outcome, sess.Voucher != nil)
		armed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if armed {
		s.scheduler.Schedule(sessionID, delay)
		l.Infof("session %s confirmed (%s), redirect in %s", sessionID, updated.Outcome, delay)
	}

	return updated.View(), nil
}

// Close dismisses the session. Refused while a redirect is pending so the
// user cannot strand a completed payment without its confirmation page. The
// guard check and the removal share one critical section, so a concurrent
// confirmation cannot arm a redirect on a session being deleted.
func (s *service) Close(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteIf(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		if sess.PendingRedirect {
			return ErrRedirectPending
		}

		return fireTransition(sess, triggerReset)
	}); err != nil {
		return err
	}

	s.scheduler.Cancel(sessionID)

	return nil
}

// HandleProcessorEvent reconciles out-of-band processor notifications with
// session state. Events for unknown authorizations are acknowledged and
// dropped; asynchronous methods can settle long after the session is gone.
func (s *service) HandleProcessorEvent(ctx context.Context, event ProcessorEvent) error {
	l := s.loggerProvider(ctx)

	sess, err := s.sessions.FindByAuthorization(ctx, event.AuthorizationID)
	if err != nil {
		if errors.Is(err, dal.ErrSessionNotFound) {
			l.Infof("processor event %s for unknown authorization %s", event.Type, event.AuthorizationID)
			return nil
		}

		return err
	}

	switch event.Type {
	case ProcessorEventSucceeded:
		_, err = s.sessions.Update(ctx, sess.ID, func(sess *domain.CheckoutSession) error {
			sess.WebhookConfirmed = true

			return nil
		})

		return err
	case ProcessorEventFailed:
		// Cancel the timer before touching state so the guard never outlives
		// a payment the processor has already failed.
		s.scheduler.Cancel(sess.ID)

		_, err = s.sessions.Update(ctx, sess.ID, func(sess *domain.CheckoutSession) error {
			sess.PendingRedirect = false
			sess.Banner = LocalizedProcessorMessage(event.ErrorCode)

			return nil
		})

		return err
	default:
		l.Infof("ignoring processor event %s", event.Type)

		return nil
	}
}

// RunSweeper evicts idle sessions until the context is cancelled. Sessions
// with a pending redirect are never evicted.
func (s *service) RunSweeper(ctx context.Context) {
	l := s.loggerProvider(ctx)

	ticker := time.NewTicker(consts.SessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.sessions.Sweep(ctx, time.Now().Add(-consts.SessionTTL)); evicted > 0 {
				l.Infof("evicted %d idle checkout sessions", evicted)
			}
		}
	}
}

// redirectDue is the scheduler callback marking the pending navigation as
// consumed.
func (s *service) redirectDue(sessionID string) {
	ctx := context.Background()
	l := s.loggerProvider(ctx)

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *domain.CheckoutSession) error {
		sess.PendingRedirect = false
		sess.RedirectFired = true

		return nil
	}); err != nil {
		l.Errorf("redirect fired for unknown session %s: %s", sessionID, err)
		return
	}

	l.Infof("redirect fired for session %s", sessionID)
}

func validateLead(input LeadInput) *ValidationError {
	var fields []FieldViolation

	if r := validation.ValidateFullName(input.FullName); !r.IsValid {
		fields = append(fields, FieldViolation{Field: "fullName", Message: r.Message})
	}

	if r := validation.ValidateEmail(input.Email); !r.IsValid {
		fields = append(fields, FieldViolation{Field: "email", Message: r.Message})
	}

	if r := validation.ValidatePhone(input.PhoneCountryCode, input.PhoneNumber); !r.IsValid {
		fields = append(fields, FieldViolation{Field: "phone", Message: r.Message})
	}

	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Fields: fields}
}

// rejectionFieldByParam maps processor request parameters back onto the
// lead form fields they were built from.
var rejectionFieldByParam = map[string]string{
	"receipt_email": "email",
}

var rejectionFieldMessages = map[string]string{
	"email": "Por favor, insira um email válido.",
}

func rejectedFieldViolation(err error) *FieldViolation {
	var rejection *payments.RejectionError
	if !errors.As(err, &rejection) || rejection.Param == "" {
		return nil
	}

	field, ok := rejectionFieldByParam[rejection.Param]
	if !ok {
		return nil
	}

	message, ok := rejectionFieldMessages[field]
	if !ok {
		message = messageGenericDecline
	}

	return &FieldViolation{Field: field, Message: message}
}

func bannerForAuthorizationError(err error) string {
	switch {
	case errors.Is(err, payments.ErrPaymentsUnavailable):
		return messageUnavailable
	case errors.Is(err, payments.ErrAuthorizationRejected):
		return messageGenericDecline
	default:
		return messageTransient
	}
}
