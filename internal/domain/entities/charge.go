package entities

import (
	"errors"
	"time"
)

var ErrInvalidChargeResponse = errors.New("invalid charge response")

// Charge is one payment attempt against an Order. Amounts are in minor units.
//
// A charge is owned by exactly one Order (OrderGatewayID) and is never removed
// from it; new gateway responses for the same GatewayID update it in place.
type Charge struct {
	GatewayID      string        `json:"id"`
	OrderGatewayID string        `json:"order_id"`
	Code           string        `json:"code"`
	Amount         int64         `json:"amount"`
	PaidAmount     int64         `json:"paid_amount"`
	CanceledAmount int64         `json:"canceled_amount"`
	RefundedAmount int64         `json:"refunded_amount"`
	Status         ChargeStatus  `json:"status"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	StatusDetail   string        `json:"status_detail,omitempty"`
	CustomerID     string        `json:"customer_id,omitempty"`
	CardID         string        `json:"card_id,omitempty"`
	CardLastFour   string        `json:"card_last_four,omitempty"`
	CardBrand      string        `json:"card_brand,omitempty"`
	BoletoURL      string        `json:"boleto_url,omitempty"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Cancel records a successful cancellation at the gateway. A zero amount
// cancels the whole charge. Value already captured is recorded as refunded.
func (c *Charge) Cancel(amount int64) {
	if amount <= 0 {
		amount = c.Amount
	}
	if c.PaidAmount > 0 {
		if amount > c.PaidAmount {
			amount = c.PaidAmount
		}
		c.RefundedAmount += amount
	} else {
		c.CanceledAmount += amount
	}
	c.Status = ChargeStatusCanceled
	c.UpdatedAt = time.Now().UTC()
}

// NewChargeFromResponse builds a Charge from a gateway charge fragment.
func NewChargeFromResponse(orderGatewayID string, r ChargeResponse) (Charge, error) {
	if r.ID == "" {
		return Charge{}, ErrInvalidChargeResponse
	}
	status := ChargeStatus(r.Status)
	if status == "" {
		status = ChargeStatusPending
	}
	return Charge{
		GatewayID:      r.ID,
		OrderGatewayID: orderGatewayID,
		Code:           r.Code,
		Amount:         r.Amount,
		PaidAmount:     r.PaidAmount,
		CanceledAmount: r.CanceledAmount,
		RefundedAmount: r.RefundedAmount,
		Status:         status,
		PaymentMethod:  r.PaymentMethod,
		StatusDetail:   r.StatusDetail,
		CustomerID:     r.CustomerID,
		CardID:         r.CardID,
		CardLastFour:   r.CardLastFour,
		CardBrand:      r.CardBrand,
		BoletoURL:      r.BoletoURL,
		UpdatedAt:      time.Now().UTC(),
	}, nil
}
