// Package redirect computes the deferred navigation for completed checkouts
// and owns the single pending timer per session.
package redirect

import (
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

// Destination carries every parameter the confirmation page needs to resolve
// final status without re-querying the processor synchronously.
type Destination struct {
	AuthorizationID string
	Status          domain.AuthorizationStatus
	PaymentMethod   string
	LeadID          string
	Voucher         *domain.VoucherDetails
}

// DelayFor returns the scheduling delay for an outcome. Voucher outcomes get
// the extended delay so the payment reference stays on screen long enough to
// be transcribed.
func DelayFor(outcome domain.Outcome, hasVoucher bool) time.Duration {
	if outcome == domain.OutcomeAsyncPending && hasVoucher {
		return consts.RedirectDelayVoucher
	}

	return consts.RedirectDelayImmediate
}

// BuildDestinationURL builds the confirmation page URL. Voucher values are
// embedded raw, never formatted.
func BuildDestinationURL(baseURL string, dest Destination) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("payment_intent", dest.AuthorizationID)
	q.Set("status", string(dest.Status))
	q.Set("payment_method", dest.PaymentMethod)
	q.Set("lead_id", dest.LeadID)

	if dest.Voucher != nil {
		q.Set("mb_entity", dest.Voucher.Entity)
		q.Set("mb_reference", dest.Voucher.Reference)
		q.Set("mb_amount", strconv.FormatInt(dest.Voucher.Amount, 10))
	}

	u.RawQuery = q.Encode()

	return u.String(), nil
}

// FireFunc is invoked on the scheduler's timer goroutine when a pending
// navigation comes due.
type FireFunc func(sessionID string)

// Scheduler arms at most one pending navigation per session. Arming replaces
// any prior timer; cancellation must happen before an error surfaces so the
// session is never stuck undismissable.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	fire   FireFunc
}

func NewScheduler(fire FireFunc) *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		fire:   fire,
	}
}

// Schedule arms the session's pending navigation, replacing any prior timer.
func (s *Scheduler) Schedule(sessionID string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.timers[sessionID]; ok {
		prior.Stop()
	}

	s.timers[sessionID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, sessionID)
		s.mu.Unlock()

		s.fire(sessionID)
	})
}

// Cancel clears the session's pending navigation. Returns whether a timer
// was armed.
func (s *Scheduler) Cancel(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[sessionID]
	if !ok {
		return false
	}

	timer.Stop()
	delete(s.timers, sessionID)

	return true
}

// Pending reports whether the session has a timer armed.
func (s *Scheduler) Pending(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[sessionID]

	return ok
}
