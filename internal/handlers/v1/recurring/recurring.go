// Package recurring exposes recurring transaction rules.
package recurring

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/service"
)

// Rule is the API response model for a recurring rule.
type Rule struct {
	ID         string `json:"id" doc:"Rule UUID"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Amount     string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
	DayOfMonth int    `json:"dayOfMonth" doc:"Day the transaction is booked on"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromService(r service.RecurringRule) Rule {
	out := Rule{
		ID:         r.ID.String(),
		Title:      r.Title,
		Category:   r.Category,
		Amount:     r.Amount.String(),
		DayOfMonth: r.DayOfMonth,
		Active:     r.Active,
	}
	if !r.CreatedAt.IsZero() {
		out.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return out
}

func serviceError(msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, service.ErrRuleNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
