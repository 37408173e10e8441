package services

import (
	"errors"
	"fmt"

	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

func validateDate(date string) error {
	if !planner.ValidDate(date) {
		return fmt.Errorf("%w: %q", utils.ErrInvalidDate, date)
	}
	return nil
}

// plannerError translates planner errors into the sentinels the HTTP layer maps.
func plannerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, planner.ErrIncompleteSelection), errors.Is(err, planner.ErrTooManyInterests):
		return fmt.Errorf("%w: %w", utils.ErrIncompleteSelection, err)
	case errors.Is(err, planner.ErrUnknownOption):
		return fmt.Errorf("%w: %w", utils.ErrUnknownOption, err)
	case errors.Is(err, planner.ErrInvalidState):
		return fmt.Errorf("%w: %w", utils.ErrInvalidSessionState, err)
	case errors.Is(err, planner.ErrSuggestionIndex):
		return fmt.Errorf("%w: %w", utils.ErrSuggestionNotFound, err)
	case errors.Is(err, planner.ErrNotAcceptable):
		return fmt.Errorf("%w: %w", utils.ErrSuggestionNotAcceptable, err)
	case errors.Is(err, planner.ErrInvalidShareToken):
		return fmt.Errorf("%w: %w", utils.ErrInvalidShareToken, err)
	}
	return err
}
