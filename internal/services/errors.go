package services

import "errors"

// Domain failures surfaced to the API layer. Store failures that are none
// of these are reported as ErrStoreUnavailable by the handlers.
var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyClaimed      = errors.New("code already claimed")
	ErrInvalidCode         = errors.New("invalid code")
	ErrAlreadyBoosted      = errors.New("campaign is already boosted")
	ErrNotFound            = errors.New("not found")
	ErrMissingFields       = errors.New("missing required fields")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
