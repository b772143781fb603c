package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

type IOrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}
