// Package agreement defines rental agreements between owners and tenants.
package agreement

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of an agreement. Transitions are
// one-directional; there is no way back from a terminal state.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusActive     Status = "ACTIVE"
	StatusExpired    Status = "EXPIRED"
	StatusTerminated Status = "TERMINATED"
)

// Party identifies which side of the agreement is acting.
type Party string

const (
	PartyOwner  Party = "OWNER"
	PartyTenant Party = "TENANT"
)

var transitions = map[Status][]Status{
	StatusDraft:  {StatusActive},
	StatusActive: {StatusExpired, StatusTerminated},
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

// Agreement binds one property (optionally a specific room), one tenant
// and one owner over a date range. All references are by identifier.
type Agreement struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"propertyId"`
	RoomID         string     `json:"roomId,omitempty"`
	OwnerID        string     `json:"ownerId"`
	TenantID       string     `json:"tenantId"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	MonthlyRent    int64      `json:"monthlyRent"`
	Deposit        int64      `json:"deposit"`
	Status         Status     `json:"status"`
	OwnerSigned    bool       `json:"ownerSigned"`
	TenantSigned   bool       `json:"tenantSigned"`
	OwnerSignedAt  *time.Time `json:"ownerSignedAt,omitempty"`
	TenantSignedAt *time.Time `json:"tenantSignedAt,omitempty"`
	DocumentIDs    []string   `json:"documentIds,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Transition moves the agreement to the next status, rejecting anything
// outside the allowed set.
func (a *Agreement) Transition(to Status) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("invalid agreement transition %s -> %s", a.Status, to)
	}
	a.Status = to
	return nil
}

// FullySigned reports whether both parties have signed.
func (a *Agreement) FullySigned() bool {
	return a.OwnerSigned && a.TenantSigned
}
