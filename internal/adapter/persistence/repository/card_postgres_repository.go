package repository

import (
	"context"
	"database/sql"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"
)

type CardPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICardRepository = (*CardPostgresRepository)(nil)

func NewCardPostgresRepository(db *sql.DB) *CardPostgresRepository {
	return &CardPostgresRepository{db: db}
}

func (r *CardPostgresRepository) Save(ctx context.Context, c entities.SavedCard) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO saved_cards (id,owner_email,customer_id,method,brand,last_four,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET owner_email=$2,customer_id=$3,method=$4,brand=$5,last_four=$6`,
		c.GatewayID, c.OwnerEmail, c.CustomerID, string(c.Method), c.Brand, c.LastFour, c.CreatedAt)
	return err
}

func (r *CardPostgresRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]entities.SavedCard, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id,owner_email,customer_id,method,brand,last_four,created_at FROM saved_cards WHERE owner_email=$1 ORDER BY created_at`, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []entities.SavedCard{}
	for rows.Next() {
		var c entities.SavedCard
		if err := rows.Scan(&c.GatewayID, &c.OwnerEmail, &c.CustomerID, (*string)(&c.Method), &c.Brand, &c.LastFour, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
