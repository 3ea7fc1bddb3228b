package domain

import "errors"

// Kind classifies a failure for callers that need to branch on it.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindDuplicateKey Kind = "duplicate_key"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindStorage      Kind = "storage"
)

// Error is a tagged domain error. Two Errors match with errors.Is when they
// share the same Code, so wrapped or detailed copies still match the
// sentinels below.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	// Detail carries the offending field or the failing operation.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Domain errors.
var (
	ErrParticipantNotFound = newError(KindNotFound, "participant_not_found", "participant not found")
	ErrEventNotFound       = newError(KindNotFound, "event_not_found", "event not found")
	ErrSubmissionNotFound  = newError(KindNotFound, "submission_not_found", "submission not found")

	ErrParticipantExists = newError(KindDuplicateKey, "participant_exists", "participant already registered")
	ErrDuplicateKey      = newError(KindDuplicateKey, "duplicate_key", "duplicate key")

	ErrUnknownParticipant = newError(KindValidation, "unknown_participant", "unknown participant")
	ErrUnknownEvent       = newError(KindValidation, "unknown_event", "unknown event")
	ErrInvalidInput       = newError(KindValidation, "invalid_input", "invalid input")

	ErrAlreadySubmitted = newError(KindConflict, "already_submitted", "already submitted")
	ErrSubmissionLocked = newError(KindConflict, "submission_locked", "submission locked")
	ErrEventClosed      = newError(KindConflict, "event_closed", "event closed")

	ErrNotOwner = newError(KindForbidden, "not_owner", "caller is not the service owner")

	ErrStorage = newError(KindStorage, "storage", "storage error")
)

// Invalid returns an ErrInvalidInput naming the rejected field.
func Invalid(detail string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrInvalidInput.Code,
		Message: ErrInvalidInput.Message,
		Detail:  detail,
	}
}

// Storage wraps a driver error raised while running op.
func Storage(op string, err error) error {
	return &Error{
		Kind:    KindStorage,
		Code:    ErrStorage.Code,
		Message: op,
		Detail:  errString(err),
		Err:     err,
	}
}

// Wrap returns a copy of sentinel that keeps err in its chain.
func Wrap(sentinel *Error, err error) error {
	return &Error{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Code returns the domain code carried by err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// KindOf returns the kind carried by err. Errors that did not come from the
// domain are reported as storage failures.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// DetailOf returns the detail carried by err, if any.
func DetailOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
