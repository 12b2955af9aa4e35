package atlas

import "fmt"

// APIError is returned when the Atlas API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("atlas request failed: %v", e.Status)
}

// DecodeError is returned when a payload record cannot be converted into a
// Story or Author. Field names the offending key, nested keys are joined
// with dots.
type DecodeError struct {
	Field string
	Msg   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode field %q: %v", e.Field, e.Msg)
}

func decodeErrorf(field string, format string, args ...any) *DecodeError {
	return &DecodeError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
