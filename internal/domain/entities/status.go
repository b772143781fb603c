package entities

// OrderStatus is the local order status, also written onto the platform order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusCanceled   OrderStatus = "canceled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// OrderState is the lifecycle state of the platform order. A closed platform
// order is never reopened by an automated sync.
type OrderState string

const (
	OrderStateNew            OrderState = "new"
	OrderStatePendingPayment OrderState = "pending_payment"
	OrderStateProcessing     OrderState = "processing"
	OrderStateComplete       OrderState = "complete"
	OrderStateClosed         OrderState = "closed"
	OrderStateCanceled       OrderState = "canceled"
	OrderStateHolded         OrderState = "holded"
)

// ChargeStatus is the status of one charge at the gateway.
type ChargeStatus string

const (
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusProcessing ChargeStatus = "processing"
	ChargeStatusPaid       ChargeStatus = "paid"
	ChargeStatusCanceled   ChargeStatus = "canceled"
	ChargeStatusRefunded   ChargeStatus = "refunded"
	ChargeStatusFailed     ChargeStatus = "failed"
)

// IsTerminalForCancellation reports whether cancellation must skip the charge.
func (s ChargeStatus) IsTerminalForCancellation() bool {
	return s == ChargeStatusCanceled || s == ChargeStatusFailed
}

// PaymentMethod identifies how a payment instruction is settled.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodVoucher    PaymentMethod = "voucher"
	PaymentMethodMulti      PaymentMethod = "multi"
)

// DeriveOrderStatus computes an order status from its charges.
//
//   - any pending/processing charge keeps the order open (processing wins over pending)
//   - otherwise the charges that still hold value decide: all paid => paid,
//     all refunded => refunded
//   - with no charge holding value: any canceled => canceled, else failed
//
// An empty list yields pending.
func DeriveOrderStatus(charges []Charge) OrderStatus {
	if len(charges) == 0 {
		return OrderStatusPending
	}

	counts := map[ChargeStatus]int{}
	for _, c := range charges {
		counts[c.Status]++
	}

	switch {
	case counts[ChargeStatusProcessing] > 0:
		return OrderStatusProcessing
	case counts[ChargeStatusPending] > 0:
		return OrderStatusPending
	case counts[ChargeStatusPaid] > 0:
		return OrderStatusPaid
	case counts[ChargeStatusRefunded] > 0:
		return OrderStatusRefunded
	case counts[ChargeStatusCanceled] > 0:
		return OrderStatusCanceled
	default:
		return OrderStatusFailed
	}
}
