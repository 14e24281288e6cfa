package service

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks requests rejected by service-level validation
var ErrInvalidRequest = errors.New("invalid request")

func invalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
