package entities

import (
	"context"

	"github.com/shopspring/decimal"
)

// PlatformOrder is the host platform's own order record. It is owned by the
// platform; the reconciliation core writes totals, status and history into it.
type PlatformOrder interface {
	Code() string
	GatewayID() string
	SetGatewayID(id string)
	GrandTotal() decimal.Decimal
	Customer() *Customer
	PaymentMethod() PaymentMethod
	Payments() []Payment
	Items() []Item
	Shipping() *Shipping

	State() OrderState
	SetState(state OrderState)
	Status() OrderStatus
	SetStatus(status OrderStatus)
	StatusLabel(status OrderStatus) string

	SetTotalPaid(amount decimal.Decimal)
	SetBaseTotalPaid(amount decimal.Decimal)
	SetTotalCanceled(amount decimal.Decimal)
	SetBaseTotalCanceled(amount decimal.Decimal)
	SetTotalRefunded(amount decimal.Decimal)
	SetBaseTotalRefunded(amount decimal.Decimal)

	// SendEmail notifies the customer and reports whether a message went out.
	SendEmail(ctx context.Context, message string) bool
	AddHistoryComment(comment string, customerNotified bool)
	Save(ctx context.Context) error
}
