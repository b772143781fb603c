package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/i18n"
	"payment_sync/internal/usecase/interfaces"
)

// IOrderUseCase is the reconciliation engine as seen by platform hooks.
type IOrderUseCase interface {
	CreateOrderAtGateway(ctx context.Context, platformOrder entities.PlatformOrder) ([]*entities.Order, error)
	CancelAtGateway(ctx context.Context, order *entities.Order) (map[string]string, error)
	CancelAtGatewayByPlatformOrder(ctx context.Context, platformOrder entities.PlatformOrder) (map[string]string, error)
	SyncPlatformWith(ctx context.Context, order *entities.Order, changeStatus bool) error
	GetOrderByGatewayID(ctx context.Context, gatewayID string) (*entities.Order, error)
	GetOrderByPlatformID(ctx context.Context, platformID string) (*entities.Order, error)
}

// OrderService keeps local orders, gateway charges and platform orders consistent.
//
// It is not safe for concurrent use on the same order: callers must not run
// creation and cancellation for one order at the same time.
type OrderService struct {
	orders       interfaces.IOrderRepository
	charges      interfaces.IChargeRepository
	gateway      interfaces.IPaymentGateway
	config       interfaces.IModuleConfiguration
	events       interfaces.IOrderEventPublisher
	i18n         i18n.Translator
	logger       OrderLogger
	errorHandler *ErrorExceptionHandler
	handlers     *ResponseHandlerRegistry
}

var _ IOrderUseCase = (*OrderService)(nil)

// NewOrderService wires the service with the default response handlers. events may be nil.
func NewOrderService(
	orders interfaces.IOrderRepository,
	charges interfaces.IChargeRepository,
	cards interfaces.ICardRepository,
	gateway interfaces.IPaymentGateway,
	config interfaces.IModuleConfiguration,
	events interfaces.IOrderEventPublisher,
	translator i18n.Translator,
) *OrderService {
	s := &OrderService{
		orders:       orders,
		charges:      charges,
		gateway:      gateway,
		config:       config,
		events:       events,
		i18n:         translator,
		errorHandler: NewErrorExceptionHandler(translator),
	}
	s.handlers = NewDefaultResponseHandlers(orders, cards, config, s, translator)
	return s
}

// WithResponseHandlers replaces the response handler registry.
func (s *OrderService) WithResponseHandlers(r *ResponseHandlerRegistry) *OrderService {
	s.handlers = r
	return s
}

func (s *OrderService) GetOrderByGatewayID(ctx context.Context, gatewayID string) (*entities.Order, error) {
	order, err := s.orders.FindByGatewayID(ctx, gatewayID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrderByPlatformID(ctx context.Context, platformID string) (*entities.Order, error) {
	order, err := s.orders.FindByPlatformID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, eventType entities.OrderEventType, order *entities.Order, failures map[string]string) {
	if s.events == nil {
		return
	}
	event := entities.OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		GatewayID:  order.GatewayID,
		Code:       order.Code,
		Status:     order.Status,
		Failures:   failures,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[order][usecase] publish event failed type=%s order_id=%s err=%v", eventType, order.GatewayID, err)
	}
}
