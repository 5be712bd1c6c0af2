package apperrors

import "fmt"

// InvalidValueError signals that a request carried a malformed or
// out-of-range value for a single field. Field names the offender.
type InvalidValueError struct {
	Field string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value provided for the field %s", e.Field)
}

// NewInvalidValue creates an InvalidValueError for the given field.
func NewInvalidValue(field string) *InvalidValueError {
	return &InvalidValueError{Field: field}
}

// NotFoundError signals that a lookup yielded no result. ID is zero
// when the lookup was over the whole collection.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("product not found with the ID %d", e.ID)
	}
	return "products not found"
}

// NewNotFound creates a NotFoundError for a single product lookup.
func NewNotFound(id int64) *NotFoundError {
	return &NotFoundError{ID: id}
}

// NewNotFoundAll creates a NotFoundError for an empty collection.
func NewNotFoundAll() *NotFoundError {
	return &NotFoundError{}
}
