// Package request defines tenant applications against listings.
package request

import (
	"fmt"
	"time"
)

// Status is the decision state of a tenant request.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

var transitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusRejected},
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

// TenantRequest is a tenant's application for a property, with the
// documents attached to support it.
type TenantRequest struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	TenantID    string    `json:"tenantId"`
	Message     string    `json:"message,omitempty"`
	Status      Status    `json:"status"`
	DocumentIDs []string  `json:"documentIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Transition moves the request to the next status.
func (r *TenantRequest) Transition(to Status) error {
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("invalid request transition %s -> %s", r.Status, to)
	}
	r.Status = to
	return nil
}
