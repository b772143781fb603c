package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

// OrderPostgresRepository stores orders with their charges as a JSON column.
type OrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{db: db}
}

func (r *OrderPostgresRepository) Save(ctx context.Context, o *entities.Order) error {
	it := toOrderItem(o)
	charges, err := json.Marshal(it.Charges)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO orders (id,code,platform_id,status,charges,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET code=$2,platform_id=$3,status=$4,charges=$5,updated_at=$7`,
		o.GatewayID, o.Code, o.PlatformID, string(o.Status), string(charges), o.CreatedAt, o.UpdatedAt)
	return err
}

func (r *OrderPostgresRepository) FindByGatewayID(ctx context.Context, gatewayID string) (*entities.Order, error) {
	return r.findOne(ctx, `SELECT id,code,platform_id,status,charges,created_at,updated_at FROM orders WHERE id=$1`, gatewayID)
}

func (r *OrderPostgresRepository) FindByPlatformID(ctx context.Context, platformID string) (*entities.Order, error) {
	return r.findOne(ctx, `SELECT id,code,platform_id,status,charges,created_at,updated_at FROM orders WHERE platform_id=$1 ORDER BY created_at DESC LIMIT 1`, platformID)
}

func (r *OrderPostgresRepository) findOne(ctx context.Context, query string, arg string) (*entities.Order, error) {
	var (
		it                   orderItem
		charges              string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&it.ID, &it.Code, &it.PlatformID, &it.Status, &charges, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(charges), &it.Charges); err != nil {
		return nil, err
	}
	it.CreatedAt = formatTime(createdAt)
	it.UpdatedAt = formatTime(updatedAt)
	return fromOrderItem(it), nil
}
