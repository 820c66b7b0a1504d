package classifier

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when a gateway is used before Load succeeds.
var ErrNotLoaded = errors.New("classifier: gateway not loaded")

// GatewayError wraps failures from the external classification backend.
type GatewayError struct {
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
