package db

import (
	"context"

	"budgetzen-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionStore issues parameterized statements against the transactions
// table. One round trip per operation, no retries; errors propagate to the
// caller untouched (a missing row surfaces as pgx.ErrNoRows).
type TransactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

func (s *TransactionStore) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, title, amount, category, type, created_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}
	if userID == "" {
		query = `
			SELECT id, user_id, title, amount, category, type, created_at
			FROM transactions
		`
		args = nil
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.Type, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *TransactionStore) InsertTransaction(ctx context.Context, in *models.TransactionInput) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, title, amount, category, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, amount, category, type, created_at
	`
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, in.UserID, in.Title, in.Amount, in.Category, in.Type).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) UpdateTransaction(ctx context.Context, id int, in *models.TransactionInput) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET user_id = $1, title = $2, amount = $3, category = $4, type = $5
		WHERE id = $6
		RETURNING id, user_id, title, amount, category, type, created_at
	`
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, in.UserID, in.Title, in.Amount, in.Category, in.Type, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) DeleteTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	query := `
		DELETE FROM transactions
		WHERE id = $1
		RETURNING id, user_id, title, amount, category, type, created_at
	`
	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) SummaryByUser(ctx context.Context, userID string) (income, expenses decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expenses
		FROM transactions
		WHERE user_id = $1
	`
	err = s.pool.QueryRow(ctx, query, userID).Scan(&income, &expenses)
	return income, expenses, err
}
