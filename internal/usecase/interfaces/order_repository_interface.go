package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

// IOrderRepository persists local Order aggregates with their charges.
// Lookups return (nil, nil) when nothing is stored.
type IOrderRepository interface {
	FindByGatewayID(ctx context.Context, gatewayID string) (*entities.Order, error)
	FindByPlatformID(ctx context.Context, platformID string) (*entities.Order, error)
	Save(ctx context.Context, order *entities.Order) error
}
