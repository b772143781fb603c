package routes

import (
	"context"
	"fmt"
	"log"

	"payment_sync/internal/adapter/persistence/repository"
	"payment_sync/internal/config"
	"payment_sync/internal/infrastructure/database"
	"payment_sync/internal/usecase/interfaces"
)

type repositories struct {
	orders         interfaces.IOrderRepository
	charges        interfaces.IChargeRepository
	cards          interfaces.ICardRepository
	platformOrders interfaces.IPlatformOrderRepository
	close          func()
}

func openRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			orders:         repository.NewOrderDynamoRepository(ddb),
			charges:        repository.NewChargeDynamoRepository(ddb),
			cards:          repository.NewCardDynamoRepository(ddb),
			platformOrders: repository.NewPlatformOrderDynamoRepository(ddb),
			close:          func() {},
		}, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			orders:         repository.NewOrderPostgresRepository(db),
			charges:        repository.NewChargePostgresRepository(db),
			cards:          repository.NewCardPostgresRepository(db),
			platformOrders: repository.NewPlatformOrderPostgresRepository(db),
			close: func() {
				if err := db.Close(); err != nil {
					log.Printf("[storage][postgres] close failed err=%v", err)
				}
			},
		}, nil

	case config.StorageMemory:
		log.Printf("[storage][memory] data is lost on restart")
		return repositories{
			orders:         repository.NewMemoryOrderRepository(),
			charges:        repository.NewMemoryChargeRepository(),
			cards:          repository.NewMemoryCardRepository(),
			platformOrders: repository.NewMemoryPlatformOrderRepository(),
			close:          func() {},
		}, nil
	}
	return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
