package entities

import "time"

// SavedCard is a tokenized card reference kept for a customer.
type SavedCard struct {
	GatewayID  string        `json:"id"`
	OwnerEmail string        `json:"owner_email"`
	CustomerID string        `json:"customer_id,omitempty"`
	Method     PaymentMethod `json:"method"`
	Brand      string        `json:"brand,omitempty"`
	LastFour   string        `json:"last_four,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
