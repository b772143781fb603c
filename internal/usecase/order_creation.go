package usecase

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
	"payment_sync/pkg/money"
)

// CreateOrderAtGateway creates the gateway order for a platform order and
// returns the local Order as a single-element slice.
//
// When the gateway reports a failed order or charge, the charges it created are
// canceled again (best effort), the ones that resist are persisted, and the call
// fails; the "force create order" flag only lets the local Order be created
// first. Every failure is returned as a *PaymentError with code 400.
func (s *OrderService) CreateOrderAtGateway(ctx context.Context, platformOrder entities.PlatformOrder) ([]*entities.Order, error) {
	info := orderInfoOf(platformOrder)

	orders, err := s.createOrderAtGateway(ctx, platformOrder, info)
	if err != nil {
		s.logger.OrderInfo(platformOrder.Code(), err.Error(), info)
		front := s.errorHandler.Handle(err, entities.PaymentOrder{Code: platformOrder.Code()})
		return nil, &PaymentError{Kind: kindOf(err), Message: front, Code: http.StatusBadRequest}
	}
	return orders, nil
}

func (s *OrderService) createOrderAtGateway(ctx context.Context, platformOrder entities.PlatformOrder, info OrderInfo) ([]*entities.Order, error) {
	code := platformOrder.Code()
	s.logger.OrderInfo(code, "Creating order.", info)

	platformOrder.SetState(entities.OrderStateNew)
	platformOrder.SetStatus(entities.OrderStatusPending)

	paymentOrder, err := s.ExtractPaymentOrderFromPlatformOrder(platformOrder)
	if err != nil {
		return nil, err
	}

	response, err := s.gateway.CreateOrder(ctx, paymentOrder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayTransport, err)
	}

	forceCreateOrder := s.config.IsCreateOrderEnabled()
	if !forceCreateOrder && !wasOrderChargedSuccessfully(response) {
		s.logger.OrderInfo(code, fmt.Sprintf("Can't create order. - Force Create Order: %t | Order or charge status failed", forceCreateOrder), info)

		charges := createChargesFromResponse(response)
		// Compensation cancels every fragment, failed ones included.
		failures := s.cancelCharges(ctx, charges, nil, false)
		s.addChargeMessagesToLog(platformOrder, info, failures)
		s.persistUncanceledCharges(ctx, charges, failures)

		return nil, s.chargeFailedError()
	}

	if err := platformOrder.Save(ctx); err != nil {
		return nil, persistenceError("save platform order", err)
	}

	order, err := entities.NewOrderFromResponse(response)
	if err != nil {
		return nil, err
	}
	order.SetPlatformOrder(platformOrder)
	platformOrder.SetGatewayID(order.GatewayID)

	handler, err := s.handlers.Resolve(order)
	if err != nil {
		return nil, err
	}
	if err := handler.Handle(ctx, order, paymentOrder); err != nil {
		return nil, err
	}

	if err := platformOrder.Save(ctx); err != nil {
		return nil, persistenceError("save platform order", err)
	}

	if !wasOrderChargedSuccessfully(response) {
		s.logger.OrderInfo(code, fmt.Sprintf("Can't create order. - Force Create Order: %t | Order or charge status failed", forceCreateOrder), info)
		return nil, s.chargeFailedError()
	}

	s.publish(ctx, entities.OrderEventCreated, order, nil)
	return []*entities.Order{order}, nil
}

// ExtractPaymentOrderFromPlatformOrder builds the gateway request. It fails
// before any remote call when the payments do not add up to the grand total.
func (s *OrderService) ExtractPaymentOrderFromPlatformOrder(platformOrder entities.PlatformOrder) (entities.PaymentOrder, error) {
	order := entities.PaymentOrder{
		Amount:           money.ToMinorUnits(platformOrder.GrandTotal()),
		AntifraudEnabled: s.config.IsAntifraudEnabled(),
		PaymentMethod:    platformOrder.PaymentMethod(),
	}
	if customer := platformOrder.Customer(); customer != nil {
		c := *customer
		if c.Type == "" {
			c.Type = entities.CustomerTypeIndividual
		}
		order.Customer = &c
	}

	for _, p := range platformOrder.Payments() {
		order.AddPayment(p)
	}

	if !order.IsPaymentSumCorrect() {
		message := s.i18n.Dashboard(i18n.MsgPaymentSumMismatch)
		s.logger.OrderInfo(platformOrder.Code(), message, orderInfoOf(platformOrder))
		return entities.PaymentOrder{}, newUserFacingError(ErrAmountMismatch, message)
	}

	for _, item := range platformOrder.Items() {
		order.AddItem(item)
	}

	order.Code = platformOrder.Code()

	if shipping := platformOrder.Shipping(); shipping != nil {
		order.Shipping = shipping
	}

	return order, nil
}

func (s *OrderService) chargeFailedError() error {
	return newUserFacingError(ErrChargeFailed, s.i18n.Dashboard(i18n.MsgCantCreatePayment))
}

// persistUncanceledCharges keeps charges the compensating cancellation could
// not undo, so they can be reconciled by hand. Failures are only logged.
func (s *OrderService) persistUncanceledCharges(ctx context.Context, charges []entities.Charge, failures map[string]string) {
	for _, charge := range charges {
		if _, failed := failures[charge.GatewayID]; !failed {
			continue
		}
		if err := s.charges.Save(ctx, charge); err != nil {
			log.Printf("[order][create] failed persisting uncanceled charge charge_id=%s err=%v", charge.GatewayID, err)
		}
	}
}

// wasOrderChargedSuccessfully requires a status and a non-empty charge list,
// and neither the order nor any charge may report failed.
func wasOrderChargedSuccessfully(response entities.OrderResponse) bool {
	if response.Status == "" || len(response.Charges) == 0 {
		return false
	}
	if response.Status == string(entities.OrderStatusFailed) {
		return false
	}
	for _, c := range response.Charges {
		if c.Status == string(entities.ChargeStatusFailed) {
			return false
		}
	}
	return true
}

func createChargesFromResponse(response entities.OrderResponse) []entities.Charge {
	charges := make([]entities.Charge, 0, len(response.Charges))
	for _, fragment := range response.Charges {
		charge, err := entities.NewChargeFromResponse(response.ID, fragment)
		if err != nil {
			log.Printf("[order][create] skipping charge fragment order_id=%s err=%v", response.ID, err)
			continue
		}
		charges = append(charges, charge)
	}
	return charges
}
