package session

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRedirectPending  = errors.New("redirect pending, session cannot be dismissed")
	ErrRequestInFlight  = errors.New("payment authorization request already in flight")
	ErrLeadStepComplete = errors.New("lead step already completed")
	ErrNotInPaymentStep = errors.New("session is not in the payment step")

	ErrUnknownElementEvent = errors.New("unknown element event type")
)

// FieldViolation is one invalid lead input, addressed to the originating
// form field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level lead validation failures. It is
// corrected locally by the client and never reaches the processor.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}

	return fmt.Sprintf("invalid lead fields: %s", strings.Join(names, ", "))
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)

	return ve, ok
}
