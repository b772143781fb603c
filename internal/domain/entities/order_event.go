package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated            OrderEventType = "order.created"
	OrderEventCanceled           OrderEventType = "order.canceled"
	OrderEventCancellationFailed OrderEventType = "order.cancellation_failed"
)

// OrderEvent is published whenever reconciliation changes an order outcome.
type OrderEvent struct {
	ID         string            `json:"id"`
	Type       OrderEventType    `json:"type"`
	GatewayID  string            `json:"gateway_id"`
	Code       string            `json:"code"`
	Status     OrderStatus       `json:"status"`
	Failures   map[string]string `json:"failures,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// CustomerNotification is an email to the shopper about their order.
type CustomerNotification struct {
	ID        string    `json:"id"`
	OrderCode string    `json:"order_code"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
