// Package complaint defines tenant/owner complaints and their timelines.
package complaint

import (
	"fmt"
	"time"
)

// Status is the handling state of a complaint. CLOSED is terminal and
// reachable from any non-terminal state.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

var transitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusResolved, StatusClosed},
	StatusInProgress: {StatusResolved, StatusClosed},
	StatusResolved:   {StatusClosed},
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

// Event is one entry in a complaint's ordered timeline.
type Event struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Status Status    `json:"status"`
	Note   string    `json:"note,omitempty"`
}

// Complaint references either an agreement or a property, never both
// embedded; relationships are identifiers only.
type Complaint struct {
	ID          string    `json:"id"`
	AgreementID string    `json:"agreementId,omitempty"`
	PropertyID  string    `json:"propertyId,omitempty"`
	RaisedByID  string    `json:"raisedById"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Resolution  string    `json:"resolution,omitempty"`
	Timeline    []Event   `json:"timeline,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Transition moves the complaint to the next status.
func (c *Complaint) Transition(to Status) error {
	if !CanTransition(c.Status, to) {
		return fmt.Errorf("invalid complaint transition %s -> %s", c.Status, to)
	}
	c.Status = to
	return nil
}
