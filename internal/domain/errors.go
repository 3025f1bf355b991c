package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// MissingInputError signals that a required top-level request object
// was absent.
type MissingInputError struct {
	Name string
}

func (e MissingInputError) Error() string {
	if e.Name == "" {
		return "missing input"
	}
	return fmt.Sprintf("%s is required", e.Name)
}

// Is enables errors.Is matching on MissingInputError.
func (e MissingInputError) Is(target error) bool {
	_, ok := target.(MissingInputError)
	if ok {
		return true
	}
	_, ok = target.(*MissingInputError)
	return ok
}

// ErrMissingInput is the sentinel error for absent request objects.
var ErrMissingInput = MissingInputError{}

// InvalidFieldError carries the first validation failure reported for a
// request object.
type InvalidFieldError struct {
	Message string
}

func (e InvalidFieldError) Error() string {
	if e.Message == "" {
		return "invalid field"
	}
	return e.Message
}

// Is enables errors.Is matching on InvalidFieldError.
func (e InvalidFieldError) Is(target error) bool {
	_, ok := target.(InvalidFieldError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidFieldError)
	return ok
}

// ErrInvalidField is the sentinel error for failed field validation.
var ErrInvalidField = InvalidFieldError{}
