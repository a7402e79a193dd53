package apperr

import (
	"errors"
	"fmt"
)

// Kind groups business errors by how a caller should react to them.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindState         Kind = "state"
	KindNotFound      Kind = "not_found"
)

// Reasons shared across services.
const (
	ReasonNotFinalMode          = "not-final-mode"
	ReasonAlreadyAccepted       = "already-accepted"
	ReasonDuplicateApplication  = "duplicate-application"
	ReasonNoCreditCard          = "no-credit-card"
	ReasonSessionStarted        = "session-already-started"
	ReasonCreditCardOwner       = "credit-card-owner-mismatch"
	ReasonNotPending            = "not-pending"
	ReasonAlreadyPersisted      = "already-persisted"
	ReasonRegisteredMomentSet   = "registered-moment-set"
	ReasonNotOwner              = "not-owner"
	ReasonWrongRole             = "wrong-role"
	ReasonNoAcceptedApplication = "no-accepted-application"
	ReasonInvalidPriority       = "invalid-priority"
	ReasonInvalidCreditCard     = "invalid-credit-card"
	ReasonExpiredCreditCard     = "expired-credit-card"
	ReasonArticlePublished      = "article-published"
	ReasonStripeNotConfigured   = "stripe-not-configured"
	ReasonMissingStripeCustomer = "missing-stripe-customer"
	ReasonUnknownStatus         = "unknown-status"
	ReasonEmptyRecipients       = "empty-recipients"
	ReasonMissingField          = "missing-field"
	ReasonInvalidPriceRange     = "invalid-price-range"
)

// Error is the single error type returned by the services for business rule
// failures. Anything else reaching a handler is a storage or transport error.
type Error struct {
	Kind    Kind
	Reason  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on a bare *Error carrying only a Kind, or a Kind and
// a Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// ErrDuplicate is returned by stores when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrAuthorization = &Error{Kind: KindAuthorization}
	ErrState         = &Error{Kind: KindState}
	ErrNotFound      = &Error{Kind: KindNotFound}
)

func Validation(reason, msg string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Message: msg}
}

func Authorization(reason, msg string) *Error {
	return &Error{Kind: KindAuthorization, Reason: reason, Message: msg}
}

func State(reason, msg string) *Error {
	return &Error{Kind: KindState, Reason: reason, Message: msg}
}

func NotFound(what string, err error) *Error {
	return &Error{Kind: KindNotFound, Reason: what + "-not-found", Message: what + " not found", Err: err}
}

// KindOf reports the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ReasonOf reports the Reason of err, or "" if err is not an *Error.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
