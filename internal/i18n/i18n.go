// Package i18n holds the dashboard messages shown to shoppers and admins.
package i18n

import "fmt"

// Translator renders a dashboard message in the configured locale.
type Translator interface {
	Dashboard(format string, args ...any) string
}

type Catalog struct {
	locale   string
	messages map[string]string
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns the catalog for locale; unknown locales fall back to en_US.
func NewCatalog(locale string) *Catalog {
	return &Catalog{locale: locale, messages: catalogs[locale]}
}

func (c *Catalog) Locale() string {
	return c.locale
}

func (c *Catalog) Dashboard(format string, args ...any) string {
	if c != nil {
		if translated, ok := c.messages[format]; ok {
			format = translated
		}
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

const (
	MsgCantCreatePayment  = "Can't create payment. Please review the information and try again."
	MsgPaymentSumMismatch = "The sum of payments is different than the order amount! Review the information and try again."
	MsgOrderErrorRef      = "An error occurred when trying to create the order. Please try again. Error Reference: %s"
	MsgNewOrderStatus     = "New order status: %s"
	MsgOrderCanceled      = "Order '%s' canceled at the gateway"
	MsgChargesNotCanceled = "Some charges couldn't be canceled at the gateway. Reasons:"
	MsgOrderCreated       = "Order created at the gateway. Id: %s"
	MsgBoletoLink         = "Boleto available at: %s"
	MsgCardSaved          = "Card ending in %s saved for future purchases"
)

// Order status labels.
const (
	LabelPending    = "Pending"
	LabelProcessing = "Processing"
	LabelPaid       = "Paid"
	LabelCanceled   = "Canceled"
	LabelRefunded   = "Refunded"
	LabelFailed     = "Failed"
)

var catalogs = map[string]map[string]string{
	"pt_BR": {
		MsgCantCreatePayment:  "Não foi possível criar o pagamento. Por favor, revise as informações e tente novamente.",
		MsgPaymentSumMismatch: "A soma dos pagamentos é diferente do valor do pedido! Revise as informações e tente novamente.",
		MsgOrderErrorRef:      "Ocorreu um erro ao tentar criar o pedido. Por favor, tente novamente. Referência do erro: %s",
		MsgNewOrderStatus:     "Novo status do pedido: %s",
		MsgOrderCanceled:      "Pedido '%s' cancelado no gateway",
		MsgChargesNotCanceled: "Algumas cobranças não puderam ser canceladas no gateway. Motivos:",
		MsgOrderCreated:       "Pedido criado no gateway. Id: %s",
		MsgBoletoLink:         "Boleto disponível em: %s",
		MsgCardSaved:          "Cartão final %s salvo para compras futuras",
		LabelPending:          "Pendente",
		LabelProcessing:       "Processando",
		LabelPaid:             "Pago",
		LabelCanceled:         "Cancelado",
		LabelRefunded:         "Reembolsado",
		LabelFailed:           "Falhou",
	},
}
