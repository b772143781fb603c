package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryComment is one entry of a platform order's status history.
type HistoryComment struct {
	Comment          string    `json:"comment"`
	CustomerNotified bool      `json:"customer_notified"`
	CreatedAt        time.Time `json:"created_at"`
}

// PlatformOrderRecord is the stored form of a platform order.
type PlatformOrderRecord struct {
	Code          string          `json:"code"`
	GatewayID     string          `json:"gateway_id,omitempty"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Customer      *Customer       `json:"customer,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Payments      []Payment       `json:"payments"`
	Items         []Item          `json:"items"`
	Shipping      *Shipping       `json:"shipping,omitempty"`

	State             OrderState      `json:"state"`
	Status            OrderStatus     `json:"status"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	BaseTotalPaid     decimal.Decimal `json:"base_total_paid"`
	TotalCanceled     decimal.Decimal `json:"total_canceled"`
	BaseTotalCanceled decimal.Decimal `json:"base_total_canceled"`
	TotalRefunded     decimal.Decimal `json:"total_refunded"`
	BaseTotalRefunded decimal.Decimal `json:"base_total_refunded"`

	History   []HistoryComment `json:"history"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
