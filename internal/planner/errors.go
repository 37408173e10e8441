package planner

import "errors"

var (
	ErrIncompleteSelection = errors.New("selection needs 1-3 interests, a company and a template")
	ErrTooManyInterests    = errors.New("at most 3 interests can be chosen")
	ErrUnknownOption       = errors.New("unknown option")
	ErrInvalidState        = errors.New("action not allowed in the current session state")
	ErrSuggestionIndex     = errors.New("suggestion index out of range")
	ErrNotAcceptable       = errors.New("suggestion cannot be added to the plan")
	ErrInvalidShareToken   = errors.New("invalid share token")
)
