package user

import (
	"errors"
	"fmt"
)

// User-related errors
var (
	// Validation errors
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")

	// ErrStorage matches every *StorageError via errors.Is
	ErrStorage = errors.New("storage error")
)

// StorageError reports a failed read or write against the user store.
// The original driver error is kept as Err.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
func (e *StorageError) Unwrap() error        { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
