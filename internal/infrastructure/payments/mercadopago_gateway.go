package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
	"payment_sync/pkg/money"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidChargeID                 = errors.New("invalid mercado pago charge id")
)

// MercadoPagoGateway maps gateway orders onto Mercado Pago payments. An order
// is the set of payments sharing its id as external_reference; each payment
// is one charge.
type MercadoPagoGateway struct {
	client  payment.Client
	refunds refund.Client
	mock    *mockGateway
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mock: newMockGateway()}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:  payment.NewClient(cfg),
		refunds: refund.NewClient(cfg),
	}, nil
}

// CreateOrder creates one payment per payment instruction. When a later
// payment fails to be created, the ones already created come back inside a
// failed response so the caller can compensate.
func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, order entities.PaymentOrder) (entities.OrderResponse, error) {
	if g != nil && g.mock != nil {
		return g.mock.createOrder(order), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.OrderResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	orderID := "or_" + uuid.NewString()
	log.Printf("[payment][gateway] create order start code=%s order_id=%s payments=%d", order.Code, orderID, len(order.Payments))

	charges := make([]entities.ChargeResponse, 0, len(order.Payments))
	for _, p := range order.Payments {
		req, err := buildPaymentRequest(orderID, order, p)
		if err != nil {
			return entities.OrderResponse{}, err
		}

		resp, err := g.client.Create(ctx, req)
		if err != nil {
			log.Printf("[payment][gateway] sdk create failed order_id=%s method=%s err=%v", orderID, p.Method, err)
			if len(charges) == 0 {
				return entities.OrderResponse{}, err
			}
			return buildOrderResponse(orderID, order.Code, charges, string(entities.OrderStatusFailed)), nil
		}

		charge, err := decodeCharge(resp, p.Method)
		if err != nil {
			return entities.OrderResponse{}, err
		}
		log.Printf("[payment][gateway] payment created order_id=%s provider_payment_id=%s provider_status=%s", orderID, charge.ID, charge.Status)
		charges = append(charges, charge)
	}

	return buildOrderResponse(orderID, order.Code, charges, ""), nil
}

// CancelCharge cancels an unpaid payment or refunds a paid one.
func (g *MercadoPagoGateway) CancelCharge(ctx context.Context, charge entities.Charge) error {
	if g != nil && g.mock != nil {
		return g.mock.cancelCharge(charge)
	}
	if g == nil || g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(charge.GatewayID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidChargeID, charge.GatewayID)
	}

	if charge.Status == entities.ChargeStatusPaid || charge.PaidAmount > 0 {
		log.Printf("[payment][gateway] refund start provider_payment_id=%d", id)
		if _, err := g.refunds.Create(ctx, id); err != nil {
			log.Printf("[payment][gateway] refund failed provider_payment_id=%d err=%v", id, err)
			return err
		}
		return nil
	}

	log.Printf("[payment][gateway] cancel start provider_payment_id=%d", id)
	if _, err := g.client.Cancel(ctx, id); err != nil {
		log.Printf("[payment][gateway] cancel failed provider_payment_id=%d err=%v", id, err)
		return err
	}
	return nil
}

// GetOrder rebuilds an order from the payments referencing it.
func (g *MercadoPagoGateway) GetOrder(ctx context.Context, gatewayID string) (*entities.Order, error) {
	if g != nil && g.mock != nil {
		return g.mock.getOrder(gatewayID)
	}
	if g == nil || g.client == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": gatewayID},
	})
	if err != nil {
		log.Printf("[payment][gateway] search failed order_id=%s err=%v", gatewayID, err)
		return nil, err
	}
	if resp == nil || len(resp.Results) == 0 {
		return nil, nil
	}

	charges := make([]entities.ChargeResponse, 0, len(resp.Results))
	code := ""
	for i := range resp.Results {
		charge, err := decodeCharge(&resp.Results[i], "")
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
		if code == "" {
			code = orderCodeOf(&resp.Results[i])
		}
	}

	return entities.NewOrderFromResponse(buildOrderResponse(gatewayID, code, charges, ""))
}

func buildOrderResponse(orderID, code string, charges []entities.ChargeResponse, status string) entities.OrderResponse {
	if status == "" {
		derived := make([]entities.Charge, 0, len(charges))
		for _, c := range charges {
			derived = append(derived, entities.Charge{Status: entities.ChargeStatus(c.Status)})
		}
		status = string(entities.DeriveOrderStatus(derived))
	}
	raw, _ := json.Marshal(charges)
	return entities.OrderResponse{
		ID:      orderID,
		Code:    code,
		Status:  status,
		Charges: charges,
		Raw:     raw,
	}
}

func buildPaymentRequest(orderID string, order entities.PaymentOrder, p entities.Payment) (payment.Request, error) {
	body := map[string]any{
		"transaction_amount": money.ToMajorUnits(p.Amount).InexactFloat64(),
		"description":        "Order " + order.Code,
		"external_reference": orderID,
		"binary_mode":        !order.AntifraudEnabled,
		"metadata": map[string]any{
			"order_code": order.Code,
			"method":     string(p.Method),
		},
	}

	switch p.Method {
	case entities.PaymentMethodBoleto:
		body["payment_method_id"] = "bolbradesco"
	default:
		body["payment_method_id"] = p.Brand
		body["token"] = p.CardToken
		installments := p.Installments
		if installments <= 0 {
			installments = 1
		}
		body["installments"] = installments
	}

	if c := order.Customer; c != nil {
		payer := map[string]any{
			"email":      c.Email,
			"first_name": c.Name,
		}
		if c.Document != "" {
			docType := "CPF"
			if c.Type == entities.CustomerTypeCompany {
				docType = "CNPJ"
			}
			payer["identification"] = map[string]any{"type": docType, "number": c.Document}
		}
		body["payer"] = payer
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return payment.Request{}, err
	}
	return req, nil
}

// mpPayment is the subset of a Mercado Pago payment the gateway reads.
type mpPayment struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	TransactionAmount float64        `json:"transaction_amount"`
	PaymentMethodID   string         `json:"payment_method_id"`
	PaymentTypeID     string         `json:"payment_type_id"`
	Metadata          map[string]any `json:"metadata"`
	Card              struct {
		ID             string `json:"id"`
		LastFourDigits string `json:"last_four_digits"`
	} `json:"card"`
	Payer struct {
		ID string `json:"id"`
	} `json:"payer"`
	TransactionDetails struct {
		ExternalResourceURL string  `json:"external_resource_url"`
		TotalPaidAmount     float64 `json:"total_paid_amount"`
	} `json:"transaction_details"`
}

func decodePayment(resp *payment.Response) (mpPayment, error) {
	var p mpPayment
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return p, err
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, err
	}
	return p, nil
}

func decodeCharge(resp *payment.Response, method entities.PaymentMethod) (entities.ChargeResponse, error) {
	p, err := decodePayment(resp)
	if err != nil {
		return entities.ChargeResponse{}, err
	}
	if method == "" {
		method = methodOf(p)
	}

	status := MapPaymentStatus(p.Status)
	amount := money.ToMinorUnits(decimal.NewFromFloat(p.TransactionAmount))
	charge := entities.ChargeResponse{
		ID:            strconv.FormatInt(p.ID, 10),
		Status:        string(status),
		Amount:        amount,
		PaymentMethod: method,
		StatusDetail:  p.StatusDetail,
		CustomerID:    p.Payer.ID,
		CardID:        p.Card.ID,
		CardLastFour:  p.Card.LastFourDigits,
		CardBrand:     p.PaymentMethodID,
		BoletoURL:     p.TransactionDetails.ExternalResourceURL,
	}
	switch status {
	case entities.ChargeStatusPaid:
		charge.PaidAmount = amount
	case entities.ChargeStatusCanceled:
		charge.CanceledAmount = amount
	case entities.ChargeStatusRefunded:
		charge.PaidAmount = amount
		charge.RefundedAmount = amount
	}
	return charge, nil
}

func orderCodeOf(resp *payment.Response) string {
	p, err := decodePayment(resp)
	if err != nil {
		return ""
	}
	code, _ := p.Metadata["order_code"].(string)
	return code
}

func methodOf(p mpPayment) entities.PaymentMethod {
	if m, ok := p.Metadata["method"].(string); ok && m != "" {
		return entities.PaymentMethod(m)
	}
	switch p.PaymentTypeID {
	case "credit_card", "debit_card", "prepaid_card":
		return entities.PaymentMethodCreditCard
	case "ticket":
		return entities.PaymentMethodBoleto
	default:
		return entities.PaymentMethod(p.PaymentTypeID)
	}
}

// MapPaymentStatus converts a Mercado Pago payment status to a charge status.
func MapPaymentStatus(status string) entities.ChargeStatus {
	switch status {
	case "approved":
		return entities.ChargeStatusPaid
	case "authorized", "in_process", "in_mediation":
		return entities.ChargeStatusProcessing
	case "pending":
		return entities.ChargeStatusPending
	case "rejected":
		return entities.ChargeStatusFailed
	case "cancelled":
		return entities.ChargeStatusCanceled
	case "refunded", "charged_back":
		return entities.ChargeStatusRefunded
	default:
		return entities.ChargeStatusPending
	}
}
