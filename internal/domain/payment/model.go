// Package payment defines rent payments tied to agreements.
package payment

import (
	"fmt"
	"time"
)

// Status is the settlement state of a payment.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusFailed  Status = "FAILED"
)

var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusFailed},
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

// Payment is a single rent installment. TransactionID is set only once
// the payment settles.
type Payment struct {
	ID            string     `json:"id"`
	AgreementID   string     `json:"agreementId"`
	Amount        int64      `json:"amount"`
	DueDate       time.Time  `json:"dueDate"`
	Status        Status     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Transition moves the payment to the next status.
func (p *Payment) Transition(to Status) error {
	if !CanTransition(p.Status, to) {
		return fmt.Errorf("invalid payment transition %s -> %s", p.Status, to)
	}
	p.Status = to
	return nil
}
