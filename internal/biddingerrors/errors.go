package biddingerrors

import (
	"errors"
	"fmt"
	"time"
)

// Error categories. Every error returned by the engine wraps exactly one of these.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)

// Repository-level errors
var (
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("bid %w", ErrNotFound)
	ErrPaymentNotFound = fmt.Errorf("payment %w", ErrNotFound)
	ErrStatusChanged   = fmt.Errorf("status changed concurrently: %w", ErrInvalidState)
)

// business logic errors
var (
	ErrInvalidDates        = fmt.Errorf("invalid date range: %w", ErrValidation)
	ErrBlackoutDate        = fmt.Errorf("dates include a blackout date: %w", ErrValidation)
	ErrBidTooLow           = fmt.Errorf("bid below listing minimum: %w", ErrValidation)
	ErrListingNotLive      = fmt.Errorf("listing is not accepting bids: %w", ErrInvalidState)
	ErrDuplicatePendingBid = fmt.Errorf("pending bid already exists for overlapping dates: %w", ErrConflict)
	ErrBidNotPending       = fmt.Errorf("bid is not pending: %w", ErrInvalidState)
	ErrBidNotAccepted      = fmt.Errorf("bid is not accepted: %w", ErrInvalidState)
	ErrPaymentNotSettled   = fmt.Errorf("payment is not authorized or captured: %w", ErrInvalidState)
	ErrAlreadyPaid         = fmt.Errorf("bid has already been paid: %w", ErrInvalidState)
	ErrOverbooked          = fmt.Errorf("inventory exhausted: %w", ErrConflict)
	ErrNotBidOwner         = fmt.Errorf("bid belongs to another user: %w", ErrForbidden)
	ErrNotOperator         = fmt.Errorf("caller cannot operate this listing: %w", ErrForbidden)
)

// gateway errors
var (
	ErrInvalidSignature = fmt.Errorf("webhook signature verification failed: %w", ErrValidation)
	ErrGateway          = errors.New("payment gateway error")
)

// OverbookedError reports the earliest day on which a listing has no capacity left
type OverbookedError struct {
	Date time.Time
}

func (e *OverbookedError) Error() string {
	return fmt.Sprintf("inventory no longer available for %s", e.Date.Format("2006-01-02"))
}

func (e *OverbookedError) Unwrap() error { return ErrOverbooked }
