// Package platform is the host-side order record the reconciliation core
// writes its totals, status and history into.
package platform

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
	"payment_sync/internal/usecase/interfaces"
)

var ErrOrderNotFound = errors.New("platform order not found")

var statusLabels = map[entities.OrderStatus]string{
	entities.OrderStatusPending:    i18n.LabelPending,
	entities.OrderStatusProcessing: i18n.LabelProcessing,
	entities.OrderStatusPaid:       i18n.LabelPaid,
	entities.OrderStatusCanceled:   i18n.LabelCanceled,
	entities.OrderStatusRefunded:   i18n.LabelRefunded,
	entities.OrderStatusFailed:     i18n.LabelFailed,
}

// Factory builds platform orders bound to their store and notifier.
type Factory struct {
	store    interfaces.IPlatformOrderRepository
	notifier interfaces.ICustomerNotifier
	i18n     i18n.Translator
}

// NewFactory returns a Factory. notifier may be nil, in which case no email goes out.
func NewFactory(store interfaces.IPlatformOrderRepository, notifier interfaces.ICustomerNotifier, translator i18n.Translator) *Factory {
	return &Factory{store: store, notifier: notifier, i18n: translator}
}

func (f *Factory) New(record *entities.PlatformOrderRecord) *Order {
	return &Order{record: record, store: f.store, notifier: f.notifier, i18n: f.i18n}
}

// Load returns the stored platform order with the given code.
func (f *Factory) Load(ctx context.Context, code string) (*Order, error) {
	record, err := f.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrOrderNotFound
	}
	return f.New(record), nil
}

// Order implements entities.PlatformOrder over a PlatformOrderRecord.
type Order struct {
	record   *entities.PlatformOrderRecord
	store    interfaces.IPlatformOrderRepository
	notifier interfaces.ICustomerNotifier
	i18n     i18n.Translator
}

var _ entities.PlatformOrder = (*Order)(nil)

// Record returns the underlying record.
func (o *Order) Record() *entities.PlatformOrderRecord { return o.record }

func (o *Order) Code() string                          { return o.record.Code }
func (o *Order) GatewayID() string                     { return o.record.GatewayID }
func (o *Order) SetGatewayID(id string)                { o.record.GatewayID = id }
func (o *Order) GrandTotal() decimal.Decimal           { return o.record.GrandTotal }
func (o *Order) Customer() *entities.Customer          { return o.record.Customer }
func (o *Order) PaymentMethod() entities.PaymentMethod { return o.record.PaymentMethod }
func (o *Order) Payments() []entities.Payment          { return o.record.Payments }
func (o *Order) Items() []entities.Item                { return o.record.Items }
func (o *Order) Shipping() *entities.Shipping          { return o.record.Shipping }
func (o *Order) State() entities.OrderState            { return o.record.State }
func (o *Order) SetState(state entities.OrderState)    { o.record.State = state }
func (o *Order) Status() entities.OrderStatus          { return o.record.Status }
func (o *Order) SetStatus(status entities.OrderStatus) { o.record.Status = status }

func (o *Order) StatusLabel(status entities.OrderStatus) string {
	label, ok := statusLabels[status]
	if !ok {
		return string(status)
	}
	return o.i18n.Dashboard(label)
}

func (o *Order) SetTotalPaid(amount decimal.Decimal)         { o.record.TotalPaid = amount }
func (o *Order) SetBaseTotalPaid(amount decimal.Decimal)     { o.record.BaseTotalPaid = amount }
func (o *Order) SetTotalCanceled(amount decimal.Decimal)     { o.record.TotalCanceled = amount }
func (o *Order) SetBaseTotalCanceled(amount decimal.Decimal) { o.record.BaseTotalCanceled = amount }
func (o *Order) SetTotalRefunded(amount decimal.Decimal)     { o.record.TotalRefunded = amount }
func (o *Order) SetBaseTotalRefunded(amount decimal.Decimal) { o.record.BaseTotalRefunded = amount }

// SendEmail hands the message to the notifier and reports whether it was accepted.
func (o *Order) SendEmail(ctx context.Context, message string) bool {
	customer := o.record.Customer
	if o.notifier == nil || customer == nil || customer.Email == "" {
		return false
	}
	err := o.notifier.Notify(ctx, entities.CustomerNotification{
		ID:        uuid.NewString(),
		OrderCode: o.record.Code,
		Email:     customer.Email,
		Name:      customer.Name,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[platform][order] notify failed code=%s err=%v", o.record.Code, err)
		return false
	}
	return true
}

func (o *Order) AddHistoryComment(comment string, customerNotified bool) {
	o.record.History = append(o.record.History, entities.HistoryComment{
		Comment:          comment,
		CustomerNotified: customerNotified,
		CreatedAt:        time.Now().UTC(),
	})
}

func (o *Order) Save(ctx context.Context) error {
	now := time.Now().UTC()
	if o.record.CreatedAt.IsZero() {
		o.record.CreatedAt = now
	}
	o.record.UpdatedAt = now
	return o.store.Save(ctx, o.record)
}
