package payments

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentsUnavailable   = errors.New("online payments are not available at this time")
	ErrProcessorUnavailable  = errors.New("payment processor request failed")
	ErrAuthorizationRejected = errors.New("payment authorization rejected")
	ErrInvalidAmount         = errors.New("invalid payment amount")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)

// RejectionError is a structural rejection from the processor. Param names
// the request parameter the processor refused, when it reported one, so the
// caller can map the rejection back onto an input field.
type RejectionError struct {
	Param string
	Code  string
}

func (e *RejectionError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("payment authorization rejected (param %s, code %s)", e.Param, e.Code)
	}

	return fmt.Sprintf("payment authorization rejected (code %s)", e.Code)
}

// Unwrap makes the rejection match ErrAuthorizationRejected.
func (e *RejectionError) Unwrap() error {
	return ErrAuthorizationRejected
}
