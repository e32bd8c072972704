package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/logging"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title           string `json:"title" required:"true" minLength:"1" doc:"Title of the transaction"`
	Category        string `json:"category" required:"true" minLength:"1" doc:"Category label"`
	Amount          string `json:"amount" required:"true" doc:"Signed decimal amount, negative for expenses"`
	TransactionDate string `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, tx ledger.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses the fields huma's schema cannot check.
// A missing date is left zero for the handler to default.
func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.Transaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return ledger.Transaction{
		Title:    input.Body.Title,
		Category: input.Body.Category,
		Amount:   amount,
		Date:     transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("createTransactionMs")
	id, err := h.TransactionService.CreateTransaction(ctx, tx)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
