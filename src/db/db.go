package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

const createTransactionsTable = `
	CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		amount DECIMAL(10, 2) NOT NULL,
		category VARCHAR(255) NOT NULL,
		type VARCHAR(20) NOT NULL CHECK (type IN ('income', 'expense')),
		created_at DATE NOT NULL DEFAULT CURRENT_DATE
	)
`

// EnsureSchema creates the transactions table if it does not exist. Safe to
// run on every start; a failure here must keep the server from listening.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createTransactionsTable)
	return err
}
