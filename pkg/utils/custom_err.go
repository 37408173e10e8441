package utils

import "errors"

var (
	ErrInvalidDate             = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime             = errors.New("invalid time, expected HH:MM or \"Any time\"")
	ErrInvalidRequest          = errors.New("invalid request body")
	ErrVenueNotFound           = errors.New("venue not found")
	ErrEventNotFound           = errors.New("event not found")
	ErrItemNotFound            = errors.New("plan item not found")
	ErrIncompleteSelection     = errors.New("choose 1-3 interests, a company and a template")
	ErrUnknownOption           = errors.New("unknown itinerary option")
	ErrInvalidSessionState     = errors.New("action not allowed in the current itinerary step")
	ErrSuggestionNotFound      = errors.New("suggestion not found")
	ErrSuggestionNotAcceptable = errors.New("suggestion cannot be added to a plan")
	ErrInvalidShareToken       = errors.New("this shared plan link is invalid or corrupted")
	ErrDatabaseError           = errors.New("database error")
)
