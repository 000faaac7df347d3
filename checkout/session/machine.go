package session

import (
	"context"

	"github.com/qmuntal/stateless"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

const (
	triggerPaymentReady     = "payment_ready"
	triggerConfirmSucceeded = "confirm_succeeded"
	triggerConfirmPending   = "confirm_pending"
	triggerConfirmFailed    = "confirm_failed"
	triggerReset            = "reset"
)

// fireTransition runs one trigger through the checkout step machine and
// writes the resulting step back to the session. Failed confirmations
// re-enter the payment step; reset is refused while a redirect is pending.
func fireTransition(s *domain.CheckoutSession, trigger string) error {
	machine := stateless.NewStateMachine(s.Step)

	notPendingRedirect := func(_ context.Context, _ ...any) bool {
		return !s.PendingRedirect
	}

	machine.Configure(domain.StepLead).
		Permit(triggerPaymentReady, domain.StepPayment).
		PermitReentry(triggerReset)

	machine.Configure(domain.StepPayment).
		Permit(triggerConfirmSucceeded, domain.StepSuccess).
		Permit(triggerConfirmPending, domain.StepSuccess).
		PermitReentry(triggerConfirmFailed).
		Permit(triggerReset, domain.StepLead, notPendingRedirect)

	machine.Configure(domain.StepSuccess).
		Permit(triggerReset, domain.StepLead, notPendingRedirect)

	if err := machine.Fire(trigger); err != nil {
		return err
	}

	s.Step = machine.MustState().(domain.Step)

	return nil
}
