// Package rating defines tenant ratings of properties.
package rating

import "time"

// Rating is a tenant's score for a property. Score is 1 through 5.
type Rating struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	TenantID   string    `json:"tenantId"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
