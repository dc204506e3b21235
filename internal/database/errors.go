package database

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the store cannot be opened or created
var ErrStorageUnavailable = errors.New("storage unavailable")

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
