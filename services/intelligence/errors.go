package ai

import "fmt"

// InvalidRequestError marks caller mistakes that should map to a 400.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

func NewInvalidRequestError(msg string) error {
	return &InvalidRequestError{Message: msg}
}

// UpstreamError wraps a failure from the generation provider.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream generation failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
