package service

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidQuantity    = errors.New("shares to buy must be at least 1")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrInsufficientShares = errors.New("not enough shares available")
	ErrAmountMismatch     = errors.New("invalid amount")
	ErrDuplicateRequest   = errors.New("duplicate purchase request")
	ErrMissingAuthCode    = errors.New("no authorization code provided")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrFileNotSupported   = errors.New("unsupported file type")
	ErrStoreUnavailable   = errors.New("storage temporarily unavailable")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

// ErrorMap binds each sentinel to the HTTP status it surfaces as.
// Anything unmapped is treated as a 500.
var ErrorMap = map[error]int{
	ErrInvalidQuantity:    http.StatusBadRequest,
	ErrChannelNotFound:    http.StatusNotFound,
	ErrInsufficientShares: http.StatusBadRequest,
	ErrAmountMismatch:     http.StatusBadRequest,
	ErrDuplicateRequest:   http.StatusBadRequest,
	ErrMissingAuthCode:    http.StatusBadRequest,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrFileNotSupported:   http.StatusBadRequest,
	ErrStoreUnavailable:   http.StatusServiceUnavailable,
	UnExpectedError:       http.StatusInternalServerError,
}
