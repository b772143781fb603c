package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
)

// CancelChargesAtGateway cancels every charge that is not canceled or failed
// yet and returns the failure reason per charge id. An empty map means every
// attempted cancellation succeeded.
//
// With an owning order, successful cancellations are applied through it;
// without one, the passed slice elements are updated in place.
func (s *OrderService) CancelChargesAtGateway(ctx context.Context, charges []entities.Charge, order *entities.Order) map[string]string {
	return s.cancelCharges(ctx, charges, order, true)
}

func (s *OrderService) cancelCharges(ctx context.Context, charges []entities.Charge, order *entities.Order, skipTerminal bool) map[string]string {
	failures := map[string]string{}

	for i := range charges {
		charge := charges[i]
		if skipTerminal && charge.Status.IsTerminalForCancellation() {
			continue
		}

		if err := s.gateway.CancelCharge(ctx, charge); err != nil {
			log.Printf("[order][cancel] charge cancel failed charge_id=%s err=%v", charge.GatewayID, err)
			failures[charge.GatewayID] = err.Error()
			continue
		}

		if order == nil {
			charges[i].Cancel(0)
			continue
		}
		if _, err := order.CancelCharge(charge.GatewayID, 0); err != nil {
			log.Printf("[order][cancel] canceled charge not owned by order order_id=%s charge_id=%s", order.GatewayID, charge.GatewayID)
		}
	}

	return failures
}

// CancelAtGateway cancels an order and all its charges at the gateway.
//
// The persisted order, when there is one, is authoritative over the argument.
// The order is marked canceled only when every charge cancels; otherwise its
// status is kept, the charges that did cancel are persisted with the platform
// totals, and the failure reasons are recorded in the platform history.
// The returned map holds those reasons and is empty on full success.
func (s *OrderService) CancelAtGateway(ctx context.Context, order *entities.Order) (map[string]string, error) {
	if order.GatewayID != "" {
		saved, err := s.orders.FindByGatewayID(ctx, order.GatewayID)
		if err != nil {
			return nil, persistenceError("find order", err)
		}
		if saved != nil {
			if saved.PlatformOrder() == nil {
				saved.SetPlatformOrder(order.PlatformOrder())
			}
			order = saved
		}
	}

	if order.Status == entities.OrderStatusCanceled {
		log.Printf("[order][cancel] already canceled order_id=%s", order.GatewayID)
		return map[string]string{}, nil
	}

	platformOrder := order.PlatformOrder()
	if platformOrder == nil {
		return nil, ErrPlatformOrderMissing
	}

	failures := s.CancelChargesAtGateway(ctx, order.Charges(), order)
	if len(failures) > 0 {
		log.Printf("[order][cancel] partial failure order_id=%s failed_charges=%d", order.GatewayID, len(failures))
		// Charges that did cancel are stored so a retry does not cancel them again.
		if err := s.orders.Save(ctx, order); err != nil {
			return failures, persistenceError("save order", err)
		}
		if err := s.SyncPlatformWith(ctx, order, false); err != nil {
			return failures, err
		}
		if err := s.AddMessagesToPlatformHistory(ctx, failures, order); err != nil {
			return failures, err
		}
		s.publish(ctx, entities.OrderEventCancellationFailed, order, failures)
		return failures, nil
	}

	order.SetStatus(entities.OrderStatusCanceled)
	platformOrder.SetStatus(entities.OrderStatusCanceled)

	if err := s.orders.Save(ctx, order); err != nil {
		return failures, persistenceError("save order", err)
	}

	label := platformOrder.StatusLabel(order.Status)
	notified := platformOrder.SendEmail(ctx, s.i18n.Dashboard(i18n.MsgNewOrderStatus, label))
	platformOrder.AddHistoryComment(s.i18n.Dashboard(i18n.MsgOrderCanceled, order.GatewayID), notified)

	if err := platformOrder.Save(ctx); err != nil {
		return failures, persistenceError("save platform order", err)
	}

	log.Printf("[order][cancel] canceled order_id=%s code=%s", order.GatewayID, order.Code)
	s.publish(ctx, entities.OrderEventCanceled, order, nil)
	return failures, nil
}

// AddMessagesToPlatformHistory records all cancellation failures as a single
// platform history comment and saves the platform order.
func (s *OrderService) AddMessagesToPlatformHistory(ctx context.Context, failures map[string]string, order *entities.Order) error {
	platformOrder := order.PlatformOrder()
	if platformOrder == nil {
		return ErrPlatformOrderMissing
	}

	platformOrder.AddHistoryComment(s.formatCancellationFailures(failures), false)
	if err := platformOrder.Save(ctx); err != nil {
		return persistenceError("save platform order", err)
	}
	return nil
}

func (s *OrderService) formatCancellationFailures(failures map[string]string) string {
	ids := make([]string, 0, len(failures))
	for id := range failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(s.i18n.Dashboard(i18n.MsgChargesNotCanceled))
	b.WriteString("<br /><ul>")
	for _, id := range ids {
		fmt.Fprintf(&b, "<li>%s : %s</li>", id, failures[id])
	}
	b.WriteString("</ul>")
	return b.String()
}

// addChargeMessagesToLog logs one line per charge that could not be canceled.
func (s *OrderService) addChargeMessagesToLog(platformOrder entities.PlatformOrder, info OrderInfo, failures map[string]string) {
	ids := make([]string, 0, len(failures))
	for id := range failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		s.logger.OrderInfo(
			platformOrder.Code(),
			fmt.Sprintf("Charge %s couldn't be canceled at the gateway. Reason: %s", id, failures[id]),
			info,
		)
	}
}

// CancelAtGatewayByPlatformOrder fetches the gateway order referenced by the
// platform order and cancels it. Platform orders never sent to the gateway are ignored.
func (s *OrderService) CancelAtGatewayByPlatformOrder(ctx context.Context, platformOrder entities.PlatformOrder) (map[string]string, error) {
	gatewayID := platformOrder.GatewayID()
	if gatewayID == "" {
		return map[string]string{}, nil
	}

	order, err := s.gateway.GetOrder(ctx, gatewayID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayTransport, err)
	}
	if order == nil {
		return map[string]string{}, nil
	}

	order.SetPlatformOrder(platformOrder)
	return s.CancelAtGateway(ctx, order)
}
