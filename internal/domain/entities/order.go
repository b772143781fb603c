package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidOrderResponse = errors.New("invalid order response")
	ErrChargeNotInOrder     = errors.New("charge does not belong to order")
)

// Order is the local aggregate tracking a purchase and its charges.
//
// Charges are exclusively owned by the Order: Charges returns copies and every
// mutation goes through UpdateCharge or CancelCharge.
type Order struct {
	GatewayID  string
	Code       string
	PlatformID string
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	charges       []Charge
	platformOrder PlatformOrder
}

func NewOrder(gatewayID, code string, status OrderStatus, charges []Charge) *Order {
	now := time.Now().UTC()
	o := &Order{
		GatewayID:  gatewayID,
		Code:       code,
		PlatformID: code,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, c := range charges {
		c.OrderGatewayID = gatewayID
		o.charges = append(o.charges, c)
	}
	return o
}

// RestoreOrder rebuilds a stored Order.
func RestoreOrder(gatewayID, code, platformID string, status OrderStatus, charges []Charge, createdAt, updatedAt time.Time) *Order {
	o := NewOrder(gatewayID, code, status, charges)
	if platformID != "" {
		o.PlatformID = platformID
	}
	o.CreatedAt = createdAt
	o.UpdatedAt = updatedAt
	return o
}

// NewOrderFromResponse builds the local Order from a gateway order response.
// The status is derived from the charges when the response carries any.
func NewOrderFromResponse(r OrderResponse) (*Order, error) {
	if r.ID == "" {
		return nil, ErrInvalidOrderResponse
	}

	charges := make([]Charge, 0, len(r.Charges))
	for _, cr := range r.Charges {
		c, err := NewChargeFromResponse(r.ID, cr)
		if err != nil {
			return nil, err
		}
		charges = append(charges, c)
	}

	status := OrderStatus(r.Status)
	if len(charges) > 0 {
		status = DeriveOrderStatus(charges)
	}
	if status == "" {
		status = OrderStatusPending
	}
	return NewOrder(r.ID, r.Code, status, charges), nil
}

// Charges returns a copy of the order charges.
func (o *Order) Charges() []Charge {
	out := make([]Charge, len(o.charges))
	copy(out, o.charges)
	return out
}

// Charge returns the charge with the given gateway id.
func (o *Order) Charge(gatewayID string) (Charge, bool) {
	for _, c := range o.charges {
		if c.GatewayID == gatewayID {
			return c, true
		}
	}
	return Charge{}, false
}

// UpdateCharge replaces the charge with the same gateway id, or appends it.
func (o *Order) UpdateCharge(c Charge) {
	c.OrderGatewayID = o.GatewayID
	o.UpdatedAt = time.Now().UTC()
	for i := range o.charges {
		if o.charges[i].GatewayID == c.GatewayID {
			o.charges[i] = c
			return
		}
	}
	o.charges = append(o.charges, c)
}

// CancelCharge applies a successful gateway cancellation to an owned charge.
func (o *Order) CancelCharge(gatewayID string, amount int64) (Charge, error) {
	for i := range o.charges {
		if o.charges[i].GatewayID == gatewayID {
			o.charges[i].Cancel(amount)
			o.UpdatedAt = time.Now().UTC()
			return o.charges[i], nil
		}
	}
	return Charge{}, ErrChargeNotInOrder
}

func (o *Order) SetStatus(status OrderStatus) {
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
}

func (o *Order) PlatformOrder() PlatformOrder {
	return o.platformOrder
}

func (o *Order) SetPlatformOrder(p PlatformOrder) {
	o.platformOrder = p
	if p != nil && o.PlatformID == "" {
		o.PlatformID = p.Code()
	}
}
