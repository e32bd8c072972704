package recurring

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/logging"
)

type ApplyInput struct {
	Body struct {
		Month string `json:"month,omitempty" pattern:"^[0-9]{4}-[0-9]{2}$" doc:"Month as YYYY-MM, defaults to the current month"`
	}
}

type AppliedTransaction struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
}

type ApplyOutput struct {
	Body struct {
		Created []AppliedTransaction `json:"created" doc:"Transactions booked by this call, empty when the month was already applied"`
	}
}

type ruleApplier interface {
	Apply(ctx context.Context, month time.Time) ([]ledger.Transaction, error)
}

// ApplyHandler handles POST /v1/recurring/apply.
type ApplyHandler struct {
	RecurringService ruleApplier
	Location         *time.Location
}

func NewApplyHandler(svc ruleApplier, loc *time.Location) *ApplyHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ApplyHandler{RecurringService: svc, Location: loc}
}

func (h *ApplyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "apply-recurring-rules",
		Method:      http.MethodPost,
		Path:        "/v1/recurring/apply",
		Summary:     "Book recurring transactions",
		Description: "Creates this month's transaction for every active rule not yet booked. Safe to repeat.",
		Tags:        []string{"Recurring"},
	}, h.handle)
}

func (h *ApplyHandler) handle(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	month := time.Now().In(h.Location)
	if input.Body.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", input.Body.Month, h.Location)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM", err)
		}
		month = parsed
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logData.AddTiming("applyRecurringMs")
	created, err := h.RecurringService.Apply(ctx, month)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to apply recurring rules", err)
	}
	logData.AddData("recurringCreated", len(created))

	out := &ApplyOutput{}
	out.Body.Created = make([]AppliedTransaction, len(created))
	for i, tx := range created {
		out.Body.Created[i] = AppliedTransaction{
			ID:              tx.ID.String(),
			Title:           tx.Title,
			Category:        tx.Category,
			Amount:          tx.Amount.String(),
			TransactionDate: tx.Date.Format(time.RFC3339),
		}
	}
	return out, nil
}
