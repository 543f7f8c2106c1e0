// Package apperror defines the error taxonomy shared by the campaign core.
// Every error crossing a service boundary carries a Kind so callers can map
// outcomes to user messaging without string matching.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	// KindStorage is the default for unexpected persistence faults.
	KindStorage Kind = iota

	// KindNotFound when a campaign or participant does not exist.
	KindNotFound

	// KindCampaignNotActive when the lifecycle gate fails.
	KindCampaignNotActive

	// KindNotAParticipant when the actor is not invited to the campaign.
	KindNotAParticipant

	// KindEditNotAllowed when the edit policy forbids resubmitting.
	KindEditNotAllowed

	// KindSelectionInvalid when a selection rule is violated; the Reason
	// identifies which one.
	KindSelectionInvalid

	// KindBusy on per-participant lock contention, retryable.
	KindBusy
)

// Reason identifies the selection rule behind a KindSelectionInvalid error.
type Reason string

const (
	// ReasonTooManyItems ...
	ReasonTooManyItems Reason = "too_many_items"

	// ReasonTooFewItems ...
	ReasonTooFewItems Reason = "too_few_items"

	// ReasonQuantityOutOfRange ...
	ReasonQuantityOutOfRange Reason = "quantity_out_of_range"

	// ReasonColorNotAllowed ...
	ReasonColorNotAllowed Reason = "color_not_allowed"

	// ReasonProductNotAvailable ...
	ReasonProductNotAvailable Reason = "product_not_available"
)

// Error ...
type Error struct {
	Kind   Kind
	Reason Reason
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Err
}

// New ...
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf ...
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause while assigning a kind.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// SelectionInvalid ...
func SelectionInvalid(reason Reason, msg string) error {
	return &Error{Kind: KindSelectionInvalid, Reason: reason, Msg: msg}
}

// KindOf returns the kind of err, defaulting to KindStorage for errors that
// did not originate in this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// ReasonOf returns the selection reason, empty for other kinds.
func ReasonOf(err error) Reason {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
