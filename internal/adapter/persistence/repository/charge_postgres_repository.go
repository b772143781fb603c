package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

type ChargePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IChargeRepository = (*ChargePostgresRepository)(nil)

func NewChargePostgresRepository(db *sql.DB) *ChargePostgresRepository {
	return &ChargePostgresRepository{db: db}
}

func (r *ChargePostgresRepository) Save(ctx context.Context, c entities.Charge) error {
	payload, err := json.Marshal(toChargeItem(c))
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO charges (id,order_id,status,payload,updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET order_id=$2,status=$3,payload=$4,updated_at=$5`,
		c.GatewayID, c.OrderGatewayID, string(c.Status), string(payload), c.UpdatedAt)
	return err
}

func (r *ChargePostgresRepository) ListByOrderGatewayID(ctx context.Context, orderGatewayID string) ([]entities.Charge, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM charges WHERE order_id=$1 ORDER BY id`, orderGatewayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	charges := []entities.Charge{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var it chargeItem
		if err := json.Unmarshal([]byte(payload), &it); err != nil {
			return nil, err
		}
		charges = append(charges, fromChargeItem(it))
	}
	return charges, rows.Err()
}
