package usecase

import (
	"context"

	"payment_sync/internal/domain/entities"
	"payment_sync/pkg/money"
)

// ChargeTotals are order-level amounts in minor units.
type ChargeTotals struct {
	Paid     int64
	Canceled int64
	Refunded int64
}

// ComputeTotals sums the paid, canceled and refunded amounts of charges.
func ComputeTotals(charges []entities.Charge) ChargeTotals {
	var t ChargeTotals
	for _, c := range charges {
		t.Paid += c.PaidAmount
		t.Canceled += c.CanceledAmount
		t.Refunded += c.RefundedAmount
	}
	return t
}

// SyncPlatformWith writes the charge totals onto the platform order, optionally
// updates its status, and saves it once.
func (s *OrderService) SyncPlatformWith(ctx context.Context, order *entities.Order, changeStatus bool) error {
	platformOrder := order.PlatformOrder()
	if platformOrder == nil {
		return ErrPlatformOrderMissing
	}

	totals := ComputeTotals(order.Charges())
	paid := money.ToMajorUnits(totals.Paid)
	canceled := money.ToMajorUnits(totals.Canceled)
	refunded := money.ToMajorUnits(totals.Refunded)

	platformOrder.SetTotalPaid(paid)
	platformOrder.SetBaseTotalPaid(paid)
	platformOrder.SetTotalCanceled(canceled)
	platformOrder.SetBaseTotalCanceled(canceled)
	platformOrder.SetTotalRefunded(refunded)
	platformOrder.SetBaseTotalRefunded(refunded)

	if changeStatus {
		s.ChangeOrderStatus(order)
	}

	if err := platformOrder.Save(ctx); err != nil {
		return persistenceError("save platform order", err)
	}
	return nil
}

// ChangeOrderStatus projects the order status onto the platform order. Paid is
// shown as processing on the platform. Closed platform orders are left untouched.
func (s *OrderService) ChangeOrderStatus(order *entities.Order) {
	platformOrder := order.PlatformOrder()
	if platformOrder == nil {
		return
	}

	status := order.Status
	if status == entities.OrderStatusPaid {
		status = entities.OrderStatusProcessing
	}

	if platformOrder.State() != entities.OrderStateClosed {
		platformOrder.SetStatus(status)
	}
}
