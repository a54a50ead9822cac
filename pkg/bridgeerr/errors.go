// Package bridgeerr implements the protocol-wide error taxonomy (the
// Kind enum and typed Error). It sits below both the registry and
// the bridge state machine so either can return a typed error without creating an import cycle between them.
package bridgeerr

import (
	"errors"
	"fmt"

	apperrors "github.com/chainsafe/watchtower-bridge/pkg/app/errors"
)

// Kind enumerates the protocol error taxonomy. These are not Go
// type names -- every kind is carried as the Kind field of a *Error so
// callers can switch on it regardless of the wrapping chain of
// fmt.Errorf/%w calls.
type Kind int

const (
	KindUnauthorized Kind = iota
	KindChainNotRegistered
	KindTokenNotMapped
	KindAlreadyRegistered
	KindAlreadySubmitted
	KindAlreadyApproved
	KindNotApproved
	KindAlreadyExecuted
	KindAlreadyCancelled
	KindNotCancelled
	KindCancelWindowActive
	KindCancelWindowExpired
	KindInsufficientGasTip
	KindInvalidAmount
	KindNotFound
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "Unauthorized"
	case KindChainNotRegistered:
		return "ChainNotRegistered"
	case KindTokenNotMapped:
		return "TokenNotMapped"
	case KindAlreadyRegistered:
		return "AlreadyRegistered"
	case KindAlreadySubmitted:
		return "AlreadySubmitted"
	case KindAlreadyApproved:
		return "AlreadyApproved"
	case KindNotApproved:
		return "NotApproved"
	case KindAlreadyExecuted:
		return "AlreadyExecuted"
	case KindAlreadyCancelled:
		return "AlreadyCancelled"
	case KindNotCancelled:
		return "NotCancelled"
	case KindCancelWindowActive:
		return "CancelWindowActive"
	case KindCancelWindowExpired:
		return "CancelWindowExpired"
	case KindInsufficientGasTip:
		return "InsufficientGasTip"
	case KindInvalidAmount:
		return "InvalidAmount"
	case KindNotFound:
		return "NotFound"
	case KindTransient:
		return "Transient"
	default:
		return "Unknown"
	}
}

// Error is the typed error every state-machine transition returns.
// ToServiceError maps it onto pkg/app/errors' ServiceError taxonomy
// for components that want a single error shape across the process.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, KindX) read naturally by wrapping a sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err (or anything it wraps) is a *Error of
// the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

func newErr(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

func Unauthorized(msg string) error        { return newErr(KindUnauthorized, msg, nil) }
func ChainNotRegistered(msg string) error  { return newErr(KindChainNotRegistered, msg, nil) }
func TokenNotMapped(msg string) error      { return newErr(KindTokenNotMapped, msg, nil) }
func AlreadyRegistered(msg string) error   { return newErr(KindAlreadyRegistered, msg, nil) }
func AlreadySubmitted(msg string) error    { return newErr(KindAlreadySubmitted, msg, nil) }
func AlreadyApproved(msg string) error     { return newErr(KindAlreadyApproved, msg, nil) }
func NotApproved(msg string) error         { return newErr(KindNotApproved, msg, nil) }
func AlreadyExecuted(msg string) error     { return newErr(KindAlreadyExecuted, msg, nil) }
func AlreadyCancelled(msg string) error    { return newErr(KindAlreadyCancelled, msg, nil) }
func NotCancelled(msg string) error        { return newErr(KindNotCancelled, msg, nil) }
func CancelWindowActive(msg string) error  { return newErr(KindCancelWindowActive, msg, nil) }
func CancelWindowExpired(msg string) error { return newErr(KindCancelWindowExpired, msg, nil) }
func InsufficientGasTip(msg string) error  { return newErr(KindInsufficientGasTip, msg, nil) }
func InvalidAmount(msg string) error       { return newErr(KindInvalidAmount, msg, nil) }
func NotFound(msg string) error            { return newErr(KindNotFound, msg, nil) }
func Transient(msg string, err error) error {
	return newErr(KindTransient, msg, err)
}

// ToServiceError maps a *Error onto the app-wide ServiceError category
// taxonomy, for components that want a single error shape across the
// whole process. No package in this module calls it.
func ToServiceError(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return apperrors.GeneralError(err)
	}
	switch e.Kind {
	case KindUnauthorized:
		return apperrors.UnAuthorizedError(e, e.Message)
	case KindChainNotRegistered, KindTokenNotMapped, KindNotFound:
		return apperrors.ResourceNotFoundError(e, e.Message)
	case KindAlreadySubmitted, KindAlreadyApproved, KindAlreadyExecuted, KindAlreadyCancelled, KindAlreadyRegistered:
		return apperrors.ConflictError(e, e.Message)
	case KindNotApproved, KindNotCancelled, KindCancelWindowActive, KindCancelWindowExpired, KindInvalidAmount, KindInsufficientGasTip:
		return apperrors.BadRequestError(e, e.Message)
	case KindTransient:
		return apperrors.GeneralError(e)
	default:
		return apperrors.GeneralError(e)
	}
}

// IsIdempotentRetry reports whether an off-chain caller should treat
// this error as success because the final on-chain state already
// matches the caller's intent: an Already* failure means someone got
// there first, which is the same outcome the caller wanted.
func IsIdempotentRetry(err error) bool {
	return IsKind(err, KindAlreadySubmitted) ||
		IsKind(err, KindAlreadyApproved) ||
		IsKind(err, KindAlreadyExecuted) ||
		IsKind(err, KindAlreadyCancelled) ||
		IsKind(err, KindAlreadyRegistered)
}
