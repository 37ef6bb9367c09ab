package usecase

import "strings"

// DomainError is a business rejection: the request was understood and
// refused. It never rolls anything back because nothing ran yet.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a dependency failure. Handlers surface it as a 5xx so
// the triggering event can be retried by the provider.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ValidationFailedError carries the full per-field error list so handlers
// can render a structured response instead of a flattened message.
type ValidationFailedError struct {
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, v := range e.Errors {
		msgs[i] = v.Field + " " + v.Message
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}
