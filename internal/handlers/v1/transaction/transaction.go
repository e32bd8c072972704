package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Title           string `json:"title" doc:"Title of the transaction"`
	Category        string `json:"category" doc:"Category label"`
	Amount          string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		Title:           tx.Title,
		Category:        tx.Category,
		Amount:          tx.Amount.String(),
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
	}
	if !tx.CreatedAt.IsZero() {
		out.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func serviceError(msg string, err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		return huma.NewError(http.StatusBadRequest, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
