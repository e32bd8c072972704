package transaction

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/ingest"
	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/logging"
)

const (
	FormatSimple = "simple"
	FormatBank   = "bank"
)

// ImportTransactionsBody carries either a JSON batch or a CSV document, not both.
type ImportTransactionsBody struct {
	Transactions []CreateTransactionBody `json:"transactions,omitempty" maxItems:"10000" doc:"Transactions to import"`
	CSV          string                  `json:"csv,omitempty" doc:"CSV document to parse instead of transactions"`
	Format       string                  `json:"format,omitempty" enum:"simple,bank" doc:"CSV dialect, defaults to simple"`
}

type ImportTransactionsInput struct {
	Body ImportTransactionsBody
}

type ImportTransactionsResponse struct {
	IDs      []string `json:"ids" doc:"UUIDs of the imported transactions"`
	Imported int      `json:"imported" doc:"Number of stored transactions"`
	Skipped  int      `json:"skipped" doc:"CSV rows dropped as malformed"`
}

type ImportTransactionsOutput struct {
	Status int
	Body   ImportTransactionsResponse
}

type transactionImporter interface {
	ImportTransactions(ctx context.Context, txs []ledger.Transaction) ([]uuid.UUID, error)
}

// ImportTransactionsHandler handles POST /v1/transaction/import.
type ImportTransactionsHandler struct {
	TransactionService transactionImporter
	Categorizer        *ingest.Categorizer
	Location           *time.Location
}

func NewImportTransactionsHandler(svc transactionImporter, categorizer *ingest.Categorizer, loc *time.Location) *ImportTransactionsHandler {
	if categorizer == nil {
		categorizer = ingest.DefaultCategorizer()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ImportTransactionsHandler{TransactionService: svc, Categorizer: categorizer, Location: loc}
}

func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "import-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/import",
		Summary:       "Import transactions",
		Description:   "Stores a batch of transactions atomically. The batch is either JSON or a CSV export.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *ImportTransactionsHandler) parse(input *ImportTransactionsInput) ([]ledger.Transaction, int, error) {
	body := input.Body
	hasCSV := strings.TrimSpace(body.CSV) != ""
	switch {
	case hasCSV && len(body.Transactions) > 0:
		return nil, 0, huma.NewError(http.StatusBadRequest, "send either transactions or csv, not both")
	case !hasCSV && len(body.Transactions) == 0:
		return nil, 0, huma.NewError(http.StatusBadRequest, "nothing to import")
	case !hasCSV:
		txs := make([]ledger.Transaction, len(body.Transactions))
		for i := range body.Transactions {
			tx, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body.Transactions[i]})
			if err != nil {
				return nil, 0, err
			}
			if tx.Date.IsZero() {
				tx.Date = time.Now()
			}
			txs[i] = tx
		}
		return txs, 0, nil
	}

	var (
		res ingest.Result
		err error
	)
	switch body.Format {
	case FormatBank:
		res, err = ingest.ParseBankExport(strings.NewReader(body.CSV), h.Location, h.Categorizer)
	default:
		res, err = ingest.ParseSimple(strings.NewReader(body.CSV), h.Location)
	}
	if err != nil {
		return nil, 0, huma.NewError(http.StatusBadRequest, "invalid csv", err)
	}
	if len(res.Transactions) == 0 {
		return nil, res.Skipped, huma.NewError(http.StatusBadRequest, "csv contains no valid rows", errors.New("all rows skipped"))
	}
	return res.Transactions, res.Skipped, nil
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	txs, skipped, err := h.parse(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("importRows", len(txs))
	logData.AddData("importSkipped", skipped)

	stopTimer := logData.AddTiming("importTransactionsMs")
	ids, err := h.TransactionService.ImportTransactions(ctx, txs)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to import transactions", err)
	}

	resp := ImportTransactionsResponse{
		IDs:      make([]string, len(ids)),
		Imported: len(ids),
		Skipped:  skipped,
	}
	for i, id := range ids {
		resp.IDs[i] = id.String()
	}
	return &ImportTransactionsOutput{Status: http.StatusCreated, Body: resp}, nil
}
