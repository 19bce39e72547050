package util

import (
	"strings"

	"budgetzen-server/src/models"

	"github.com/shopspring/decimal"
)

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

func ValidateTransactionType(transactionType string) bool {
	return transactionType == models.TypeIncome || transactionType == models.TypeExpense
}

// Amounts are stored as positive magnitudes; direction comes from type.
func ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}
