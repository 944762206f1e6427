package handlers

import (
	"errors"
	"fmt"
)

var (
	errBadKids      = errors.New("kids must be true or false")
	errInvalidRange = errors.New("to must not be before from")
	errEmptyMessage = errors.New("message is required")
)

func errBadDate(param, value string) error {
	return fmt.Errorf("%s: %q is not a YYYY-MM-DD or MM/DD/YYYY date", param, value)
}
