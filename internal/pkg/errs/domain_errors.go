package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Error taxonomy shared by every usecase. Handlers map these to HTTP statuses.
var (
	// Bad credentials, unknown or expired session. Never more specific than this.
	ErrAuthentication = errors.New("authentication failed")
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	// Collaborator I/O failure or timeout. The only kind a caller may retry.
	ErrStorage = errors.New("storage failure")
)

// ValidationError carries a reason that is safe to show to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Validation(reason string) error {
	return cr.WithStack(&ValidationError{Reason: reason})
}

// ValidationReason returns the client-safe reason of a validation error, if any.
func ValidationReason(err error) (string, bool) {
	var ve *ValidationError
	if cr.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

// Storage marks err as a storage failure while keeping it for logs.
func Storage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.Wrap(err, msg), ErrStorage)
}

// Classified reports whether err already carries one of the sentinels above.
func Classified(err error) bool {
	for _, s := range []error{ErrAuthentication, ErrValidation, ErrConflict, ErrNotFound, ErrStorage} {
		if Is(err, s) {
			return true
		}
	}
	return false
}

// OrStorage leaves classified errors alone and marks anything else as storage.
func OrStorage(err error, msg string) error {
	if err == nil || Classified(err) {
		return err
	}
	return Storage(err, msg)
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// NewKind defines a specific sentinel that also matches one of the taxonomy
// sentinels. Two sentinels of the same kind do not match each other.
func NewKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindMessage returns the message of the first NewKind sentinel in the chain.
func KindMessage(err error) (string, bool) {
	var ke *kindError
	if cr.As(err, &ke) {
		return ke.msg, true
	}
	return "", false
}
