package domain

import (
	"strings"
)

// AuthorizationStatus mirrors the processor payment intent status values the
// checkout flow reacts to.
type AuthorizationStatus string

const (
	AuthorizationStatusRequiresPaymentMethod AuthorizationStatus = "requires_payment_method"
	AuthorizationStatusProcessing            AuthorizationStatus = "processing"
	AuthorizationStatusSucceeded             AuthorizationStatus = "succeeded"
	AuthorizationStatusRequiresAction        AuthorizationStatus = "requires_action"
)

// PaymentAuthorization is the server-confirmed record permitting the client
// to attempt to collect a specific amount once. Immutable once created; a new
// checkout session requires a new authorization.
type PaymentAuthorization struct {
	ClientSecret    string              `json:"client_secret"`
	AuthorizationID string              `json:"authorization_id"`
	EventID         string              `json:"event_id"`
	Status          AuthorizationStatus `json:"status"`
	Amount          int64               `json:"amount"`
	Currency        string              `json:"currency"`
}

// VoucherDetails holds the Multibanco payment reference returned by the
// processor for asynchronous completion.
type VoucherDetails struct {
	Entity    string `json:"entity"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

// FormattedReference groups the reference digits for readability without
// altering the underlying value used in the redirect URL.
func (v VoucherDetails) FormattedReference() string {
	digits := v.Reference
	if len(digits) != 9 {
		return digits
	}

	return strings.Join([]string{digits[0:3], digits[3:6], digits[6:9]}, " ")
}

// ConfirmationOutcome is the processor confirmation result reported back by
// the embedded payment element after the user confirms.
type ConfirmationOutcome struct {
	Status        AuthorizationStatus `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	ErrorCode     string              `json:"error_code"`
	ErrorMessage  string              `json:"error_message"`
	Voucher       *VoucherDetails     `json:"voucher,omitempty"`
}

// Failed reports whether the confirmation carries a processor error instead
// of an intent status.
func (o ConfirmationOutcome) Failed() bool {
	return o.ErrorCode != "" || o.ErrorMessage != ""
}
