package payments

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"payment_sync/internal/domain/entities"
)

// Card tokens starting with this prefix are refused by the mock gateway.
const MockDeclinedTokenPrefix = "tok_declined"

// mockGateway answers like Mercado Pago without leaving the process.
type mockGateway struct {
	mu     sync.Mutex
	orders map[string]entities.OrderResponse
}

func newMockGateway() *mockGateway {
	return &mockGateway{orders: map[string]entities.OrderResponse{}}
}

func (m *mockGateway) createOrder(order entities.PaymentOrder) entities.OrderResponse {
	orderID := "or_" + uuid.NewString()
	log.Printf("[payment][gateway] mock create start code=%s order_id=%s", order.Code, orderID)

	charges := make([]entities.ChargeResponse, 0, len(order.Payments))
	for _, p := range order.Payments {
		charge := entities.ChargeResponse{
			ID:            "ch_" + uuid.NewString(),
			Amount:        p.Amount,
			PaymentMethod: p.Method,
			CardLastFour:  "4242",
			CardBrand:     p.Brand,
		}
		if order.Customer != nil {
			charge.CustomerID = "cus_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(order.Customer.Email)).String()
		}

		switch {
		case p.Method == entities.PaymentMethodBoleto:
			charge.Status = string(entities.ChargeStatusPending)
			charge.BoletoURL = fmt.Sprintf("https://mock.mercadopago.local/boleto/%s", charge.ID)
		case strings.HasPrefix(p.CardToken, MockDeclinedTokenPrefix):
			charge.Status = string(entities.ChargeStatusFailed)
			charge.StatusDetail = "cc_rejected_other_reason"
		default:
			charge.Status = string(entities.ChargeStatusPaid)
			charge.StatusDetail = "accredited"
			charge.PaidAmount = p.Amount
			charge.CardID = p.CardID
			if charge.CardID == "" {
				charge.CardID = "card_" + uuid.NewString()
			}
		}
		charges = append(charges, charge)
	}

	resp := buildOrderResponse(orderID, order.Code, charges, "")

	stored := resp
	stored.Charges = append([]entities.ChargeResponse(nil), resp.Charges...)
	m.mu.Lock()
	m.orders[orderID] = stored
	m.mu.Unlock()

	log.Printf("[payment][gateway] mock create success order_id=%s status=%s", orderID, resp.Status)
	return resp
}

func (m *mockGateway) cancelCharge(charge entities.Charge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, ok := m.orders[charge.OrderGatewayID]
	if !ok {
		log.Printf("[payment][gateway] mock cancel for unknown order charge_id=%s", charge.GatewayID)
		return nil
	}
	for i := range resp.Charges {
		if resp.Charges[i].ID != charge.GatewayID {
			continue
		}
		if resp.Charges[i].PaidAmount > 0 {
			resp.Charges[i].Status = string(entities.ChargeStatusRefunded)
			resp.Charges[i].RefundedAmount = resp.Charges[i].PaidAmount
		} else {
			resp.Charges[i].Status = string(entities.ChargeStatusCanceled)
			resp.Charges[i].CanceledAmount = resp.Charges[i].Amount
		}
	}
	m.orders[charge.OrderGatewayID] = resp
	return nil
}

func (m *mockGateway) getOrder(gatewayID string) (*entities.Order, error) {
	m.mu.Lock()
	resp, ok := m.orders[gatewayID]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return entities.NewOrderFromResponse(resp)
}
