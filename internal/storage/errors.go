package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every lookup miss, regardless of
// which data source produced it.
var ErrNotFound = errors.New("not found")

// NotFound builds a lookup-miss error for one record.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
