package domain

import "errors"

var (
	// ErrInvalidSourceURL is returned when a raffle URL does not match the
	// content provider's host patterns
	ErrInvalidSourceURL = errors.New("invalid source URL")

	// ErrRaffleAlreadyCalled is returned when a non-privileged request targets
	// a URL already present in the called ledger
	ErrRaffleAlreadyCalled = errors.New("raffle already called")

	// ErrResolutionFailed is returned when the raffle post cannot be fetched
	ErrResolutionFailed = errors.New("could not resolve raffle post")

	// ErrSlotsUnknown is returned when no slot count was supplied and none
	// could be parsed from the post title
	ErrSlotsUnknown = errors.New("slot count could not be determined")

	// ErrInvalidParameters is returned for winner/slot combinations outside
	// the configured bounds
	ErrInvalidParameters = errors.New("invalid draw parameters")

	// ErrRecordNotFound is returned when a store lookup finds no row
	ErrRecordNotFound = errors.New("record not found")
)
