package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. The type column is authoritative for income/expense
// classification; category is a free-text label.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	ID        int             `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionInput is the request payload for create and update. Updates
// replace the whole record; partial updates are not supported.
type TransactionInput struct {
	UserID   string          `json:"user_id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     string          `json:"type"`
}

type Summary struct {
	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
