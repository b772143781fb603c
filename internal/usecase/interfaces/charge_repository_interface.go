package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

// IChargeRepository keeps charges that are not attached to a local order yet,
// e.g. charges left behind by a failed creation, for manual reconciliation.
type IChargeRepository interface {
	Save(ctx context.Context, charge entities.Charge) error
	ListByOrderGatewayID(ctx context.Context, orderGatewayID string) ([]entities.Charge, error)
}
