package catalog

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes catalog errors.
type ErrorCode string

const (
	// ErrCodeDuplicateName indicates an add collided with an existing name.
	ErrCodeDuplicateName ErrorCode = "DUPLICATE_NAME"

	// ErrCodeNotFound indicates the referenced entity does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Error represents a rejected catalog operation.
//
// Catalog operations reject before mutating: a returned *Error always
// means no state change happened.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Kind names the entity kind ("product" or "section").
	Kind string

	// Value is the conflicting name or the missing id.
	Value string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeDuplicateName:
		return fmt.Sprintf("%s: %s with name %q already exists", e.Code, e.Kind, e.Value)
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: %s %q not found", e.Code, e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s: %s %q", e.Code, e.Kind, e.Value)
	}
}

// IsDuplicateName returns true if the error is a duplicate-name rejection.
// Uses errors.As to handle wrapped errors.
func IsDuplicateName(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeDuplicateName
	}
	return false
}

// IsNotFound returns true if the error is a missing-entity rejection.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNotFound
	}
	return false
}

// NewDuplicateNameError creates an Error for a name collision.
func NewDuplicateNameError(kind, name string) *Error {
	return &Error{Code: ErrCodeDuplicateName, Kind: kind, Value: name}
}

// NewNotFoundError creates an Error for a missing entity.
func NewNotFoundError(kind, id string) *Error {
	return &Error{Code: ErrCodeNotFound, Kind: kind, Value: id}
}
