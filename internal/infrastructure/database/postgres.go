package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		platform_id TEXT NOT NULL,
		status TEXT NOT NULL,
		charges TEXT NOT NULL,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS orders_platform_id_idx ON orders (platform_id);`,
	`CREATE TABLE IF NOT EXISTS charges (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		status TEXT NOT NULL,
		payload TEXT NOT NULL,
		updated_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS charges_order_id_idx ON charges (order_id);`,
	`CREATE TABLE IF NOT EXISTS saved_cards (
		id TEXT PRIMARY KEY,
		owner_email TEXT NOT NULL,
		customer_id TEXT,
		method TEXT,
		brand TEXT,
		last_four TEXT,
		created_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS saved_cards_owner_email_idx ON saved_cards (owner_email);`,
	`CREATE TABLE IF NOT EXISTS platform_orders (
		code TEXT PRIMARY KEY,
		gateway_id TEXT,
		state TEXT,
		status TEXT,
		payload TEXT NOT NULL,
		updated_at TIMESTAMPTZ
	);`,
}

// ConnectPostgres opens a lib/pq pool and creates the tables when missing.
func ConnectPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
