package domain

// ElementEventType is the bounded set of embedded payment element events
// dispatched into the state machine.
type ElementEventType string

const (
	ElementEventChange      ElementEventType = "change"
	ElementEventReady       ElementEventType = "ready"
	ElementEventFocus       ElementEventType = "focus"
	ElementEventMountFailed ElementEventType = "mount_failed"
)

// ElementEvent is a single embedded payment element callback, modeled as
// data instead of ad hoc DOM mutations.
type ElementEvent struct {
	Type ElementEventType `json:"type"`

	// Complete accompanies change events and drives the submit control.
	Complete bool `json:"complete"`

	// Message accompanies mount_failed events.
	Message string `json:"message"`
}
