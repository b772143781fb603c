package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
)

func cardPayment(amount int64) entities.Payment {
	return entities.Payment{
		Method:        entities.PaymentMethodCreditCard,
		Amount:        amount,
		Installments:  1,
		CardToken:     "tok_1",
		SaveOnSuccess: true,
	}
}

func expectFlags(m cancellationMocks, forceCreate, saveCards bool) {
	m.config.EXPECT().IsAntifraudEnabled().Return(false).AnyTimes()
	m.config.EXPECT().IsCreateOrderEnabled().Return(forceCreate).AnyTimes()
	m.config.EXPECT().IsSaveCards().Return(saveCards).AnyTimes()
}

func requirePaymentError(t *testing.T, err error, kind ErrorKind) *PaymentError {
	t.Helper()
	var pe *PaymentError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PaymentError, got %T (%v)", err, err)
	}
	if pe.Code != 400 {
		t.Fatalf("expected code 400, got %d", pe.Code)
	}
	if pe.Kind != kind {
		t.Fatalf("expected kind %s, got %s", kind, pe.Kind)
	}
	return pe
}

func TestOrderService_CreateOrderAtGateway_Paid(t *testing.T) {
	svc, m := newServiceWithMocks(t)
	expectFlags(m, false, false)
	platform := newFakePlatformOrder("100001", "100.00", cardPayment(10000))

	m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, po entities.PaymentOrder) (entities.OrderResponse, error) {
			if po.Amount != 10000 || po.Code != "100001" || len(po.Items) != 1 || len(po.Payments) != 1 {
				t.Fatalf("unexpected payment order: %+v", po)
			}
			if po.Customer == nil || po.Customer.Type != entities.CustomerTypeIndividual {
				t.Fatalf("expected individual customer, got %+v", po.Customer)
			}
			return entities.OrderResponse{
				ID:     "or_1",
				Code:   "100001",
				Status: "paid",
				Charges: []entities.ChargeResponse{{
					ID: "ch_1", Status: "paid", Amount: 10000, PaidAmount: 10000,
					PaymentMethod: entities.PaymentMethodCreditCard,
				}},
			}, nil
		})
	m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.events.EXPECT().PublishOrderEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.OrderEvent) error {
			if e.Type != entities.OrderEventCreated || e.GatewayID != "or_1" || e.ID == "" {
				t.Fatalf("unexpected event %+v", e)
			}
			return nil
		})

	orders, err := svc.CreateOrderAtGateway(context.Background(), platform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	order := orders[0]
	if order.GatewayID != "or_1" || order.Status != entities.OrderStatusPaid {
		t.Fatalf("unexpected order: %+v", order)
	}
	charges := order.Charges()
	if len(charges) != 1 || charges[0].GatewayID != "ch_1" || charges[0].Status != entities.ChargeStatusPaid {
		t.Fatalf("unexpected charges: %+v", charges)
	}
	if order.PlatformOrder() != platform {
		t.Fatalf("expected platform order attached")
	}
	if platform.state != entities.OrderStateNew {
		t.Fatalf("expected platform state new, got %s", platform.state)
	}
	if platform.status != entities.OrderStatusProcessing {
		t.Fatalf("expected platform status processing, got %s", platform.status)
	}
	if platform.totalPaid.String() != "100" {
		t.Fatalf("expected total paid 100, got %s", platform.totalPaid)
	}
	if platform.saves != 3 {
		t.Fatalf("expected three platform saves, got %d", platform.saves)
	}
	if last := platform.history[len(platform.history)-1]; last.comment != "Order created at the gateway. Id: or_1" {
		t.Fatalf("unexpected history: %+v", platform.history)
	}
}

func TestOrderService_CreateOrderAtGateway_FailedCharge(t *testing.T) {
	failedResponse := entities.OrderResponse{
		ID:     "or_2",
		Code:   "100002",
		Status: "failed",
		Charges: []entities.ChargeResponse{{
			ID: "ch_2", Status: "failed", Amount: 10000,
			PaymentMethod: entities.PaymentMethodCreditCard,
		}},
	}

	t.Run("compensating cancel succeeds", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100002", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(failedResponse, nil)
		m.gateway.EXPECT().CancelCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Charge) error {
				if c.GatewayID != "ch_2" || c.OrderGatewayID != "or_2" {
					t.Fatalf("unexpected cancel for %+v", c)
				}
				return nil
			}).Times(1)

		orders, err := svc.CreateOrderAtGateway(context.Background(), platform)
		if orders != nil {
			t.Fatalf("expected no orders, got %v", orders)
		}
		pe := requirePaymentError(t, err, ErrorKindRemoteChargeFailure)
		if pe.Message != i18n.MsgCantCreatePayment {
			t.Fatalf("unexpected message: %s", pe.Message)
		}
		if platform.saves != 0 {
			t.Fatalf("expected no platform save, got %d", platform.saves)
		}
	})

	t.Run("uncanceled charge is persisted", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100002", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(failedResponse, nil)
		m.gateway.EXPECT().CancelCharge(gomock.Any(), gomock.Any()).Return(errors.New("gateway timeout")).Times(1)
		m.charges.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Charge) error {
				if c.GatewayID != "ch_2" || c.OrderGatewayID != "or_2" {
					t.Fatalf("unexpected persisted charge %+v", c)
				}
				return nil
			}).Times(1)

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindRemoteChargeFailure)
	})

	t.Run("charge persistence failure is not escalated", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100002", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(failedResponse, nil)
		m.gateway.EXPECT().CancelCharge(gomock.Any(), gomock.Any()).Return(errors.New("gateway timeout"))
		m.charges.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindRemoteChargeFailure)
	})

	t.Run("force create stores the order and still fails", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, true, false)
		platform := newFakePlatformOrder("100002", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(failedResponse, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *entities.Order) error {
				if o.GatewayID != "or_2" || o.Status != entities.OrderStatusFailed {
					t.Fatalf("unexpected saved order %+v", o)
				}
				return nil
			}).Times(1)

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindRemoteChargeFailure)
		if platform.saves != 3 {
			t.Fatalf("expected three platform saves, got %d", platform.saves)
		}
	})
}

func TestOrderService_CreateOrderAtGateway_Errors(t *testing.T) {
	t.Run("payment sum mismatch makes no remote call", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100003", "100.00", cardPayment(5000))

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		pe := requirePaymentError(t, err, ErrorKindValidation)
		if pe.Message != i18n.MsgPaymentSumMismatch {
			t.Fatalf("unexpected message: %s", pe.Message)
		}
		if platform.state != entities.OrderStateNew || platform.status != entities.OrderStatusPending {
			t.Fatalf("expected new/pending platform order, got %s/%s", platform.state, platform.status)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100004", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.OrderResponse{}, errors.New("dial tcp: timeout"))

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		pe := requirePaymentError(t, err, ErrorKindTransport)
		if !strings.HasSuffix(pe.Message, "Error Reference: 100004") {
			t.Fatalf("unexpected message: %s", pe.Message)
		}
	})

	t.Run("missing status is not a successful charge", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100005", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.OrderResponse{ID: "or_5"}, nil)

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindRemoteChargeFailure)
	})

	t.Run("unresolvable response shape", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100006", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.OrderResponse{
			ID:      "or_6",
			Status:  "paid",
			Charges: []entities.ChargeResponse{{ID: "ch_6", Status: "paid", PaymentMethod: "pix"}},
		}, nil)

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindHandlerResolution)
	})

	t.Run("order persistence failure", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		expectFlags(m, false, false)
		platform := newFakePlatformOrder("100007", "100.00", cardPayment(10000))

		m.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.OrderResponse{
			ID:      "or_7",
			Status:  "paid",
			Charges: []entities.ChargeResponse{{ID: "ch_7", Status: "paid", PaymentMethod: entities.PaymentMethodCreditCard}},
		}, nil)
		m.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := svc.CreateOrderAtGateway(context.Background(), platform)
		requirePaymentError(t, err, ErrorKindPersistence)
	})
}

func TestExtractPaymentOrderFromPlatformOrder(t *testing.T) {
	svc, m := newServiceWithMocks(t)
	m.config.EXPECT().IsAntifraudEnabled().Return(true)

	platform := newFakePlatformOrder("100008", "120.50",
		cardPayment(10000),
		entities.Payment{Method: entities.PaymentMethodBoleto, Amount: 2050},
	)
	platform.method = entities.PaymentMethodMulti
	platform.shipping = &entities.Shipping{Amount: 1500, Description: "Express"}

	po, err := svc.ExtractPaymentOrderFromPlatformOrder(platform)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if po.Amount != 12050 || !po.AntifraudEnabled || po.PaymentMethod != entities.PaymentMethodMulti {
		t.Fatalf("unexpected payment order: %+v", po)
	}
	if len(po.Payments) != 2 || len(po.Items) != 1 || po.Code != "100008" {
		t.Fatalf("unexpected collections: %+v", po)
	}
	if po.Shipping == nil || po.Shipping.Description != "Express" {
		t.Fatalf("expected shipping, got %+v", po.Shipping)
	}
	if po.Customer == nil || po.Customer.Type != entities.CustomerTypeIndividual {
		t.Fatalf("expected individual customer on the request, got %+v", po.Customer)
	}
	if po.Customer == platform.customer || platform.customer.Type != "" {
		t.Fatalf("platform customer must not be modified, got %+v", platform.customer)
	}
}

func TestWasOrderChargedSuccessfully(t *testing.T) {
	paid := entities.ChargeResponse{ID: "ch_1", Status: "paid"}
	failed := entities.ChargeResponse{ID: "ch_2", Status: "failed"}

	tests := []struct {
		name     string
		response entities.OrderResponse
		want     bool
	}{
		{"paid", entities.OrderResponse{Status: "paid", Charges: []entities.ChargeResponse{paid}}, true},
		{"pending", entities.OrderResponse{Status: "pending", Charges: []entities.ChargeResponse{{ID: "ch", Status: "pending"}}}, true},
		{"missing status", entities.OrderResponse{Charges: []entities.ChargeResponse{paid}}, false},
		{"missing charges", entities.OrderResponse{Status: "paid"}, false},
		{"empty charges", entities.OrderResponse{Status: "paid", Charges: []entities.ChargeResponse{}}, false},
		{"failed order", entities.OrderResponse{Status: "failed", Charges: []entities.ChargeResponse{paid}}, false},
		{"one failed charge", entities.OrderResponse{Status: "paid", Charges: []entities.ChargeResponse{paid, failed}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wasOrderChargedSuccessfully(tt.response); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
