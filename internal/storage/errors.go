package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every lookup of a key that holds no object.
var ErrNotFound = errors.New("object not found")

// ErrFileNotFound names the missing key.
func ErrFileNotFound(key string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, key)
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
