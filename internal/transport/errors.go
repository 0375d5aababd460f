package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/RoomLink-Network/client_layer/internal/storage"
)

// Kind classifies a transport failure.
type Kind string

const (
	// KindNetwork means the backend was unreachable or the connection failed.
	KindNetwork Kind = "network"
	// KindStatus means the backend answered with a non-2xx status.
	KindStatus Kind = "status"
	// KindDecode means the response body could not be decoded.
	KindDecode Kind = "decode"
)

// Error is the single failure type surfaced by the transport façade.
// Callers branch on Kind or Status, never on message text.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindStatus:
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	// A 404 is the live backend's lookup miss; let errors.Is treat it the
	// same as a fixture-store miss.
	if e.Kind == KindStatus && e.Status == http.StatusNotFound {
		return storage.ErrNotFound
	}
	return e.Err
}

// StatusCode returns the HTTP status behind err, or 0 if err is not a
// status error.
func StatusCode(err error) int {
	var te *Error
	if errors.As(err, &te) && te.Kind == KindStatus {
		return te.Status
	}
	return 0
}

// IsNetwork reports whether err is a transport-unreachable failure.
func IsNetwork(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == KindNetwork
}
