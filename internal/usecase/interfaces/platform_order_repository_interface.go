package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

// IPlatformOrderRepository stores platform order records by code.
// FindByCode returns (nil, nil) when nothing is stored.
type IPlatformOrderRepository interface {
	FindByCode(ctx context.Context, code string) (*entities.PlatformOrderRecord, error)
	Save(ctx context.Context, record *entities.PlatformOrderRecord) error
}
