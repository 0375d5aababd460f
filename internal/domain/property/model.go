// Package property defines listings and their sub-units.
package property

import "time"

// Status tracks whether a listing is open for new tenants.
type Status string

const (
	StatusAvailable Status = "available"
	StatusRented    Status = "rented"
)

// Address is a postal address embedded by value in a listing.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Property is a rental listing. OwnerID references the owning user; only
// that user may mutate the listing.
type Property struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Address     Address   `json:"address"`
	Rent        int64     `json:"rent"`
	Deposit     int64     `json:"deposit"`
	Features    []string  `json:"features,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RentalRecord is one past tenancy of a room. History is append-only.
type RentalRecord struct {
	TenantID string     `json:"tenantId"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
}

// Room is a rentable sub-unit of a property.
type Room struct {
	ID         string         `json:"id"`
	PropertyID string         `json:"propertyId"`
	Number     string         `json:"number"`
	Type       string         `json:"type"`
	Rent       int64          `json:"rent"`
	Available  bool           `json:"available"`
	History    []RentalRecord `json:"history,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
