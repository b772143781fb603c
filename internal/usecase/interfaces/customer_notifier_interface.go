package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

type ICustomerNotifier interface {
	Notify(ctx context.Context, notification entities.CustomerNotification) error
}
