package domain

import (
	"time"
)

// Step is the explicit checkout step. DOM visibility is derived from this
// field by the client, never the reverse.
type Step string

const (
	StepLead    Step = "lead"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

// Outcome is the success sub-display branch.
type Outcome string

const (
	OutcomeNone         Outcome = ""
	OutcomeImmediate    Outcome = "immediate"
	OutcomeAsyncPending Outcome = "async_pending"
)

// CheckoutSession is the explicit session object owned by the session
// service. It replaces implicit client-side component state: constructed at
// modal open, destroyed at modal close.
type CheckoutSession struct {
	ID     string
	Step   Step
	Locale string

	Lead          *LeadRecord
	Authorization *PaymentAuthorization
	Attribution   Attribution
	Behavior      BehaviorSnapshot

	// IdempotencyToken is the token of the current payment-intent attempt.
	// Exactly one token is in flight at a time.
	IdempotencyToken string
	RequestInFlight  bool

	// Element state reported by the embedded payment form.
	ElementMounted  bool
	ElementComplete bool
	MountFailed     bool

	Outcome         Outcome
	Voucher         *VoucherDetails
	PendingRedirect bool
	RedirectURL     string
	RedirectFired   bool

	// Banner is the localized user-facing message, empty when none.
	Banner        string
	SubmitEnabled bool

	// WebhookConfirmed records out-of-band processor confirmation.
	WebhookConfirmed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is the pure render source derived from session state.
type Snapshot struct {
	SessionID       string                `json:"session_id"`
	Step            Step                  `json:"step"`
	Outcome         Outcome               `json:"outcome,omitempty"`
	PendingRedirect bool                  `json:"pending_redirect"`
	SubmitEnabled   bool                  `json:"submit_enabled"`
	Banner          string                `json:"banner,omitempty"`
	Voucher         *VoucherSnapshot      `json:"voucher,omitempty"`
	Authorization   *PaymentAuthorization `json:"authorization,omitempty"`
	RedirectURL     string                `json:"redirect_url,omitempty"`
}

// VoucherSnapshot carries both the raw and display forms of the voucher
// reference. The raw value is what the redirect URL embeds.
type VoucherSnapshot struct {
	Entity             string `json:"entity"`
	Reference          string `json:"reference"`
	FormattedReference string `json:"formatted_reference"`
	Amount             int64  `json:"amount"`
}

// View derives the render snapshot from the session.
func (s *CheckoutSession) View() *Snapshot {
	snap := &Snapshot{
		SessionID:       s.ID,
		Step:            s.Step,
		Outcome:         s.Outcome,
		PendingRedirect: s.PendingRedirect,
		SubmitEnabled:   s.SubmitEnabled,
		Banner:          s.Banner,
		Authorization:   s.Authorization,
		RedirectURL:     s.RedirectURL,
	}

	if s.Voucher != nil {
		snap.Voucher = &VoucherSnapshot{
			Entity:             s.Voucher.Entity,
			Reference:          s.Voucher.Reference,
			FormattedReference: s.Voucher.FormattedReference(),
			Amount:             s.Voucher.Amount,
		}
	}

	return snap
}
