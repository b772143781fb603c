package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

type PlatformOrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IPlatformOrderRepository = (*PlatformOrderPostgresRepository)(nil)

func NewPlatformOrderPostgresRepository(db *sql.DB) *PlatformOrderPostgresRepository {
	return &PlatformOrderPostgresRepository{db: db}
}

func (r *PlatformOrderPostgresRepository) Save(ctx context.Context, record *entities.PlatformOrderRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO platform_orders (code,gateway_id,state,status,payload,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (code) DO UPDATE SET gateway_id=$2,state=$3,status=$4,payload=$5,updated_at=$6`,
		record.Code, record.GatewayID, string(record.State), string(record.Status), string(payload), record.UpdatedAt)
	return err
}

func (r *PlatformOrderPostgresRepository) FindByCode(ctx context.Context, code string) (*entities.PlatformOrderRecord, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM platform_orders WHERE code=$1`, code).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record entities.PlatformOrderRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
