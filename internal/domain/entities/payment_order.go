package entities

// CustomerType distinguishes people from companies at the gateway.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeCompany    CustomerType = "company"
)

type Customer struct {
	GatewayID string       `json:"gateway_id,omitempty"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Document  string       `json:"document,omitempty"`
	Type      CustomerType `json:"type,omitempty"`
}

// Payment is one payment instruction of an order. Amount is in minor units.
type Payment struct {
	Method        PaymentMethod `json:"method"`
	Amount        int64         `json:"amount"`
	Installments  int           `json:"installments,omitempty"`
	CardToken     string        `json:"card_token,omitempty"`
	CardID        string        `json:"card_id,omitempty"`
	Brand         string        `json:"brand,omitempty"`
	SaveOnSuccess bool          `json:"save_on_success,omitempty"`
}

type Item struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
}

type Shipping struct {
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	RecipientName string `json:"recipient_name"`
	Address       string `json:"address"`
}

// PaymentOrder is the order request submitted to the gateway.
type PaymentOrder struct {
	Code             string
	Amount           int64
	Customer         *Customer
	AntifraudEnabled bool
	PaymentMethod    PaymentMethod
	Payments         []Payment
	Items            []Item
	Shipping         *Shipping
}

func (o *PaymentOrder) AddPayment(p Payment) {
	o.Payments = append(o.Payments, p)
}

func (o *PaymentOrder) AddItem(i Item) {
	o.Items = append(o.Items, i)
}

// IsPaymentSumCorrect reports whether the payment instructions add up to the order amount.
func (o *PaymentOrder) IsPaymentSumCorrect() bool {
	var sum int64
	for _, p := range o.Payments {
		sum += p.Amount
	}
	return sum == o.Amount
}

// PaymentFor returns the first payment instruction settled with method.
func (o *PaymentOrder) PaymentFor(method PaymentMethod) (Payment, bool) {
	for _, p := range o.Payments {
		if p.Method == method {
			return p, true
		}
	}
	return Payment{}, false
}
