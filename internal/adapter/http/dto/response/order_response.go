package response

import (
	"time"

	"payment_sync/internal/domain/entities"
	"payment_sync/pkg/money"
)

type ChargeResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	PaymentMethod  string `json:"payment_method"`
	Amount         string `json:"amount"`
	PaidAmount     string `json:"paid_amount"`
	CanceledAmount string `json:"canceled_amount"`
	RefundedAmount string `json:"refunded_amount"`
	BoletoURL      string `json:"boleto_url,omitempty"`
	CardLastFour   string `json:"card_last_four,omitempty"`
}

type OrderResponse struct {
	ID         string           `json:"id"`
	Code       string           `json:"code"`
	PlatformID string           `json:"platform_id"`
	Status     string           `json:"status"`
	Charges    []ChargeResponse `json:"charges"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type HistoryResponse struct {
	Comment          string    `json:"comment"`
	CustomerNotified bool      `json:"customer_notified"`
	CreatedAt        time.Time `json:"created_at"`
}

// PlatformOrderResponse is the platform projection after reconciliation.
type PlatformOrderResponse struct {
	Code              string            `json:"code"`
	GatewayID         string            `json:"gateway_id,omitempty"`
	State             string            `json:"state"`
	Status            string            `json:"status"`
	GrandTotal        string            `json:"grand_total"`
	TotalPaid         string            `json:"total_paid"`
	BaseTotalPaid     string            `json:"base_total_paid"`
	TotalCanceled     string            `json:"total_canceled"`
	BaseTotalCanceled string            `json:"base_total_canceled"`
	TotalRefunded     string            `json:"total_refunded"`
	BaseTotalRefunded string            `json:"base_total_refunded"`
	History           []HistoryResponse `json:"history"`
}

type OrderDetailsResponse struct {
	Order         *OrderResponse        `json:"order,omitempty"`
	PlatformOrder PlatformOrderResponse `json:"platform_order"`
}

type CancelOrderResponse struct {
	Canceled bool                  `json:"canceled"`
	Failures map[string]string     `json:"failures"`
	Platform PlatformOrderResponse `json:"platform_order"`
}

func FromOrder(o *entities.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	charges := o.Charges()
	out := &OrderResponse{
		ID:         o.GatewayID,
		Code:       o.Code,
		PlatformID: o.PlatformID,
		Status:     string(o.Status),
		Charges:    make([]ChargeResponse, 0, len(charges)),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, c := range charges {
		out.Charges = append(out.Charges, ChargeResponse{
			ID:             c.GatewayID,
			Status:         string(c.Status),
			PaymentMethod:  string(c.PaymentMethod),
			Amount:         money.ToMajorUnits(c.Amount).StringFixed(money.Precision),
			PaidAmount:     money.ToMajorUnits(c.PaidAmount).StringFixed(money.Precision),
			CanceledAmount: money.ToMajorUnits(c.CanceledAmount).StringFixed(money.Precision),
			RefundedAmount: money.ToMajorUnits(c.RefundedAmount).StringFixed(money.Precision),
			BoletoURL:      c.BoletoURL,
			CardLastFour:   c.CardLastFour,
		})
	}
	return out
}

func FromPlatformOrder(r *entities.PlatformOrderRecord) PlatformOrderResponse {
	out := PlatformOrderResponse{
		Code:              r.Code,
		GatewayID:         r.GatewayID,
		State:             string(r.State),
		Status:            string(r.Status),
		GrandTotal:        r.GrandTotal.StringFixed(money.Precision),
		TotalPaid:         r.TotalPaid.StringFixed(money.Precision),
		BaseTotalPaid:     r.BaseTotalPaid.StringFixed(money.Precision),
		TotalCanceled:     r.TotalCanceled.StringFixed(money.Precision),
		BaseTotalCanceled: r.BaseTotalCanceled.StringFixed(money.Precision),
		TotalRefunded:     r.TotalRefunded.StringFixed(money.Precision),
		BaseTotalRefunded: r.BaseTotalRefunded.StringFixed(money.Precision),
		History:           make([]HistoryResponse, 0, len(r.History)),
	}
	for _, h := range r.History {
		out.History = append(out.History, HistoryResponse{
			Comment:          h.Comment,
			CustomerNotified: h.CustomerNotified,
			CreatedAt:        h.CreatedAt,
		})
	}
	return out
}
