package interfaces

import (
	"context"

	"payment_sync/internal/domain/entities"
)

type ICardRepository interface {
	Save(ctx context.Context, card entities.SavedCard) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]entities.SavedCard, error)
}
