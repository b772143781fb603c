package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"payment_sync/internal/domain/entities"
)

type historyEntry struct {
	comment  string
	notified bool
}

// fakePlatformOrder records every write the reconciliation core makes.
type fakePlatformOrder struct {
	code       string
	gatewayID  string
	grandTotal decimal.Decimal
	customer   *entities.Customer
	method     entities.PaymentMethod
	payments   []entities.Payment
	items      []entities.Item
	shipping   *entities.Shipping

	state          entities.OrderState
	status         entities.OrderStatus
	statusWrites   int
	totalPaid      decimal.Decimal
	basePaid       decimal.Decimal
	totalCanceled  decimal.Decimal
	baseCanceled   decimal.Decimal
	totalRefunded  decimal.Decimal
	baseRefunded   decimal.Decimal
	history        []historyEntry
	emails         []string
	emailDelivered bool
	saves          int
	saveErr        error
}

var _ entities.PlatformOrder = (*fakePlatformOrder)(nil)

func newFakePlatformOrder(code, grandTotal string, payments ...entities.Payment) *fakePlatformOrder {
	return &fakePlatformOrder{
		code:           code,
		grandTotal:     decimal.RequireFromString(grandTotal),
		customer:       &entities.Customer{Name: "Ana", Email: "ana@example.com"},
		method:         entities.PaymentMethodCreditCard,
		payments:       payments,
		items:          []entities.Item{{Code: "sku-1", Description: "Book", Quantity: 1, Amount: 10000}},
		state:          entities.OrderStateProcessing,
		status:         entities.OrderStatusPending,
		emailDelivered: true,
	}
}

func (f *fakePlatformOrder) Code() string                          { return f.code }
func (f *fakePlatformOrder) GatewayID() string                     { return f.gatewayID }
func (f *fakePlatformOrder) SetGatewayID(id string)                { f.gatewayID = id }
func (f *fakePlatformOrder) GrandTotal() decimal.Decimal           { return f.grandTotal }
func (f *fakePlatformOrder) Customer() *entities.Customer          { return f.customer }
func (f *fakePlatformOrder) PaymentMethod() entities.PaymentMethod { return f.method }
func (f *fakePlatformOrder) Payments() []entities.Payment          { return f.payments }
func (f *fakePlatformOrder) Items() []entities.Item                { return f.items }
func (f *fakePlatformOrder) Shipping() *entities.Shipping          { return f.shipping }
func (f *fakePlatformOrder) State() entities.OrderState            { return f.state }
func (f *fakePlatformOrder) SetState(s entities.OrderState)        { f.state = s }
func (f *fakePlatformOrder) Status() entities.OrderStatus          { return f.status }

func (f *fakePlatformOrder) SetStatus(s entities.OrderStatus) {
	f.status = s
	f.statusWrites++
}

func (f *fakePlatformOrder) StatusLabel(s entities.OrderStatus) string {
	return "Label " + string(s)
}

func (f *fakePlatformOrder) SetTotalPaid(a decimal.Decimal)         { f.totalPaid = a }
func (f *fakePlatformOrder) SetBaseTotalPaid(a decimal.Decimal)     { f.basePaid = a }
func (f *fakePlatformOrder) SetTotalCanceled(a decimal.Decimal)     { f.totalCanceled = a }
func (f *fakePlatformOrder) SetBaseTotalCanceled(a decimal.Decimal) { f.baseCanceled = a }
func (f *fakePlatformOrder) SetTotalRefunded(a decimal.Decimal)     { f.totalRefunded = a }
func (f *fakePlatformOrder) SetBaseTotalRefunded(a decimal.Decimal) { f.baseRefunded = a }

func (f *fakePlatformOrder) SendEmail(_ context.Context, message string) bool {
	f.emails = append(f.emails, message)
	return f.emailDelivered
}

func (f *fakePlatformOrder) AddHistoryComment(comment string, notified bool) {
	f.history = append(f.history, historyEntry{comment: comment, notified: notified})
}

func (f *fakePlatformOrder) Save(context.Context) error {
	f.saves++
	return f.saveErr
}
