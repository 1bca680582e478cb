package services

import (
	"fmt"
)

// ServiceError carries the failure taxonomy code alongside the wrapped
// cause. Validation failures also carry per-field messages for inline
// display.
type ServiceError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
