package request

import (
	"errors"
	"strings"

	"payment_sync/internal/domain/entities"
	"payment_sync/pkg/money"
)

var (
	ErrInvalidOrderAmount = errors.New("invalid order amount")
	ErrMissingPayments    = errors.New("order has no payments")
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Document string `json:"document"`
	Type     string `json:"type"`
}

type PaymentRequest struct {
	Method        string `json:"method" binding:"required"`
	Amount        string `json:"amount" binding:"required" example:"100.00"`
	Installments  int    `json:"installments"`
	CardToken     string `json:"card_token"`
	CardID        string `json:"card_id"`
	Brand         string `json:"brand"`
	SaveOnSuccess bool   `json:"save_on_success"`
}

type ItemRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" binding:"required"`
	Amount      string `json:"amount" binding:"required" example:"50.00"`
}

type ShippingRequest struct {
	Amount        string `json:"amount" example:"10.00"`
	Description   string `json:"description"`
	RecipientName string `json:"recipient_name"`
	Address       string `json:"address"`
}

// CreateOrderRequest is the platform order submitted by the checkout hook.
// Amounts are decimal strings in major units.
type CreateOrderRequest struct {
	Code          string           `json:"code" binding:"required"`
	GrandTotal    string           `json:"grand_total" binding:"required" example:"100.00"`
	PaymentMethod string           `json:"payment_method"`
	Customer      *CustomerRequest `json:"customer"`
	Payments      []PaymentRequest `json:"payments"`
	Items         []ItemRequest    `json:"items"`
	Shipping      *ShippingRequest `json:"shipping"`
}

// ToRecord builds a new platform order record from the request.
func (r CreateOrderRequest) ToRecord() (*entities.PlatformOrderRecord, error) {
	if len(r.Payments) == 0 {
		return nil, ErrMissingPayments
	}

	grandTotal, err := money.FromString(r.GrandTotal)
	if err != nil || grandTotal.IsNegative() {
		return nil, ErrInvalidOrderAmount
	}

	record := &entities.PlatformOrderRecord{
		Code:          strings.TrimSpace(r.Code),
		GrandTotal:    grandTotal,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		State:         entities.OrderStateNew,
		Status:        entities.OrderStatusPending,
	}

	if r.Customer != nil {
		record.Customer = &entities.Customer{
			Name:     r.Customer.Name,
			Email:    r.Customer.Email,
			Document: r.Customer.Document,
			Type:     entities.CustomerType(r.Customer.Type),
		}
	}

	for _, p := range r.Payments {
		amount, err := minorUnits(p.Amount)
		if err != nil {
			return nil, err
		}
		record.Payments = append(record.Payments, entities.Payment{
			Method:        entities.PaymentMethod(p.Method),
			Amount:        amount,
			Installments:  p.Installments,
			CardToken:     p.CardToken,
			CardID:        p.CardID,
			Brand:         p.Brand,
			SaveOnSuccess: p.SaveOnSuccess,
		})
	}
	if record.PaymentMethod == "" {
		record.PaymentMethod = inferPaymentMethod(record.Payments)
	}

	for _, it := range r.Items {
		amount, err := minorUnits(it.Amount)
		if err != nil {
			return nil, err
		}
		record.Items = append(record.Items, entities.Item{
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      amount,
		})
	}

	if r.Shipping != nil {
		amount, err := minorUnits(r.Shipping.Amount)
		if err != nil {
			return nil, err
		}
		record.Shipping = &entities.Shipping{
			Amount:        amount,
			Description:   r.Shipping.Description,
			RecipientName: r.Shipping.RecipientName,
			Address:       r.Shipping.Address,
		}
	}

	return record, nil
}

func minorUnits(v string) (int64, error) {
	if strings.TrimSpace(v) == "" {
		return 0, nil
	}
	d, err := money.FromString(v)
	if err != nil {
		return 0, ErrInvalidOrderAmount
	}
	cents := money.ToMinorUnits(d)
	if err := money.RequireNonNegative(cents); err != nil {
		return 0, ErrInvalidOrderAmount
	}
	return cents, nil
}

func inferPaymentMethod(payments []entities.Payment) entities.PaymentMethod {
	if len(payments) > 1 {
		return entities.PaymentMethodMulti
	}
	return payments[0].Method
}
