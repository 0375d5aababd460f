// Package document defines uploaded documents and their verification state.
package document

import (
	"fmt"
	"time"
)

// Status is the verification state of a document.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
)

var transitions = map[Status][]Status{
	StatusPending: {StatusVerified, StatusRejected},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Document is a file reference owned by a user. The file itself lives on
// the CDN; only the URL is held here.
type Document struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Kind            string    `json:"kind"`
	FileName        string    `json:"fileName"`
	URL             string    `json:"url"`
	Status          Status    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Transition moves the document to the next verification status.
func (d *Document) Transition(to Status) error {
	if !CanTransition(d.Status, to) {
		return fmt.Errorf("invalid document transition %s -> %s", d.Status, to)
	}
	d.Status = to
	return nil
}
