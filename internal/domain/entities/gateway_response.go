package entities

import "encoding/json"

// OrderResponse is the gateway answer to an order creation. An empty Status
// or a nil Charges slice means the field was absent from the response.
type OrderResponse struct {
	ID      string           `json:"id"`
	Code    string           `json:"code"`
	Status  string           `json:"status,omitempty"`
	Charges []ChargeResponse `json:"charges,omitempty"`
	Raw     json.RawMessage  `json:"-"`
}

// ChargeResponse is one charge fragment of an OrderResponse.
type ChargeResponse struct {
	ID             string        `json:"id"`
	Code           string        `json:"code"`
	Status         string        `json:"status"`
	Amount         int64         `json:"amount"`
	PaidAmount     int64         `json:"paid_amount"`
	CanceledAmount int64         `json:"canceled_amount"`
	RefundedAmount int64         `json:"refunded_amount"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	StatusDetail   string        `json:"status_detail,omitempty"`
	CustomerID     string        `json:"customer_id,omitempty"`
	CardID         string        `json:"card_id,omitempty"`
	CardLastFour   string        `json:"card_last_four,omitempty"`
	CardBrand      string        `json:"card_brand,omitempty"`
	BoletoURL      string        `json:"boleto_url,omitempty"`
}

// ResponseKind is the shape of a created order, used to pick its response handler.
type ResponseKind string

const (
	ResponseKindCreditCard  ResponseKind = "credit_card"
	ResponseKindBoleto      ResponseKind = "boleto"
	ResponseKindVoucher     ResponseKind = "voucher"
	ResponseKindMultiMethod ResponseKind = "multi_method"
)

// ResolveResponseKind derives the response shape from the charges' payment
// methods. It returns false for shapes no handler exists for.
func ResolveResponseKind(charges []Charge) (ResponseKind, bool) {
	if len(charges) == 0 {
		return "", false
	}

	methods := map[PaymentMethod]struct{}{}
	for _, c := range charges {
		methods[c.PaymentMethod] = struct{}{}
	}
	if len(methods) > 1 {
		for m := range methods {
			if _, ok := singleMethodKinds[m]; !ok {
				return "", false
			}
		}
		return ResponseKindMultiMethod, true
	}

	kind, ok := singleMethodKinds[charges[0].PaymentMethod]
	if ok && len(charges) > 1 {
		return ResponseKindMultiMethod, true
	}
	return kind, ok
}

var singleMethodKinds = map[PaymentMethod]ResponseKind{
	PaymentMethodCreditCard: ResponseKindCreditCard,
	PaymentMethodBoleto:     ResponseKindBoleto,
	PaymentMethodVoucher:    ResponseKindVoucher,
}
