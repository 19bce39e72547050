package service

import (
	"context"
	"errors"
	"fmt"

	"budgetzen-server/src/models"
	"budgetzen-server/src/util"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound reports that no row matched the requested id. Handlers map it
// to 404; it is never a server fault.
var ErrNotFound = errors.New("transaction not found")

// ValidationError is returned before any storage call is made. Handlers map
// it to 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TransactionStore is the persistence gateway the service talks to.
type TransactionStore interface {
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	InsertTransaction(ctx context.Context, in *models.TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, in *models.TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) (*models.Transaction, error)
	SummaryByUser(ctx context.Context, userID string) (income, expenses decimal.Decimal, err error)
}

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// List returns the user's transactions, or every transaction when userID is
// empty. Storage order, no pagination.
func (s *TransactionService) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	txns, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return txns, nil
}

func (s *TransactionService) Create(ctx context.Context, in *models.TransactionInput) (*models.Transaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.store.InsertTransaction(ctx, in)
}

// Update replaces the whole record; all fields are required.
func (s *TransactionService) Update(ctx context.Context, id int, in *models.TransactionInput) (*models.Transaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateTransaction(ctx, id, in)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row and returns its prior field values.
func (s *TransactionService) Delete(ctx context.Context, id int) (*models.Transaction, error) {
	deleted, err := s.store.DeleteTransaction(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Summary aggregates the user's transactions by type. A user with no
// transactions gets all-zero totals, not an error.
func (s *TransactionService) Summary(ctx context.Context, userID string) (*models.Summary, error) {
	income, expenses, err := s.store.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Summary{
		Balance:  income.Sub(expenses),
		Income:   income,
		Expenses: expenses,
	}, nil
}

func validateInput(in *models.TransactionInput) error {
	if !util.ValidateRequired(in.UserID) {
		return &ValidationError{Field: "user_id", Message: "user_id is required"}
	}
	if !util.ValidateRequired(in.Title) {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if !util.ValidateRequired(in.Category) {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if !util.ValidateTransactionType(in.Type) {
		return &ValidationError{Field: "type", Message: `type must be "income" or "expense"`}
	}
	if !util.ValidateAmount(in.Amount) {
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	return nil
}
