package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment_sync/internal/domain/entities"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	assert.NotNil(t, g.mock)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.CreateOrder(context.Background(), entities.PaymentOrder{})
	assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
	assert.ErrorIs(t, g.CancelCharge(context.Background(), entities.Charge{}), ErrMercadoPagoGatewayNotConfigured)
}

func TestMockGateway_Lifecycle(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := g.CreateOrder(ctx, entities.PaymentOrder{
		Code:     "100001",
		Amount:   15000,
		Customer: &entities.Customer{Email: "ana@example.com"},
		Payments: []entities.Payment{
			{Method: entities.PaymentMethodCreditCard, Amount: 10000, CardToken: "tok_ok"},
			{Method: entities.PaymentMethodBoleto, Amount: 5000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.Charges, 2)
	assert.Equal(t, "paid", resp.Charges[0].Status)
	assert.Equal(t, int64(10000), resp.Charges[0].PaidAmount)
	assert.NotEmpty(t, resp.Charges[0].CardID)
	assert.Equal(t, "pending", resp.Charges[1].Status)
	assert.Contains(t, resp.Charges[1].BoletoURL, resp.Charges[1].ID)

	order, err := g.GetOrder(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "100001", order.Code)
	assert.Len(t, order.Charges(), 2)

	charge, _ := order.Charge(resp.Charges[0].ID)
	require.NoError(t, g.CancelCharge(ctx, charge))

	order, err = g.GetOrder(ctx, resp.ID)
	require.NoError(t, err)
	refunded, _ := order.Charge(resp.Charges[0].ID)
	assert.Equal(t, entities.ChargeStatusRefunded, refunded.Status)
	assert.Equal(t, "paid", resp.Charges[0].Status, "returned response must not change after a cancel")

	missing, err := g.GetOrder(ctx, "or_unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMockGateway_DeclinedCard(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	resp, err := g.CreateOrder(context.Background(), entities.PaymentOrder{
		Code:     "100002",
		Amount:   1000,
		Payments: []entities.Payment{{Method: entities.PaymentMethodCreditCard, Amount: 1000, CardToken: MockDeclinedTokenPrefix + "_1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "failed", resp.Charges[0].Status)
}

func TestMapPaymentStatus(t *testing.T) {
	tests := map[string]entities.ChargeStatus{
		"approved":     entities.ChargeStatusPaid,
		"authorized":   entities.ChargeStatusProcessing,
		"in_process":   entities.ChargeStatusProcessing,
		"pending":      entities.ChargeStatusPending,
		"rejected":     entities.ChargeStatusFailed,
		"cancelled":    entities.ChargeStatusCanceled,
		"refunded":     entities.ChargeStatusRefunded,
		"charged_back": entities.ChargeStatusRefunded,
		"unknown":      entities.ChargeStatusPending,
	}
	for in, want := range tests {
		assert.Equal(t, want, MapPaymentStatus(in), in)
	}
}

func TestBuildPaymentRequest(t *testing.T) {
	order := entities.PaymentOrder{
		Code:             "100001",
		AntifraudEnabled: true,
		Customer:         &entities.Customer{Name: "Ana", Email: "ana@example.com", Document: "12345678909"},
	}

	req, err := buildPaymentRequest("or_1", order, entities.Payment{
		Method: entities.PaymentMethodCreditCard, Amount: 12345, CardToken: "tok_1", Brand: "visa",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, 123.45, body["transaction_amount"])
	assert.Equal(t, "or_1", body["external_reference"])
	assert.Equal(t, "visa", body["payment_method_id"])
	assert.Equal(t, "tok_1", body["token"])
	assert.EqualValues(t, 1, body["installments"])

	boleto, err := buildPaymentRequest("or_1", order, entities.Payment{Method: entities.PaymentMethodBoleto, Amount: 500})
	require.NoError(t, err)
	raw, _ = json.Marshal(boleto)
	body = map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "bolbradesco", body["payment_method_id"])
}
