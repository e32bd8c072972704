package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/ledger"
	"github.com/carson-networks/budget-insights/internal/recurring"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func newTestWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockITransactionTable, *sqlconfig.MockIRecurringRuleTable) {
	t.Helper()
	txTable := sqlconfig.NewMockITransactionTable(t)
	ruleTable := sqlconfig.NewMockIRecurringRuleTable(t)
	return storage.NewWriter(context.Background(), nil, txTable, ruleTable), txTable, ruleTable
}

func sample(title string, amount string) ledger.Transaction {
	return ledger.Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    title,
		Category: "Food",
		Amount:   decimal.RequireFromString(amount),
		Date:     time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransaction_Perform(t *testing.T) {
	w, txTable, _ := newTestWriter(t)
	tx := sample("Lunch", "-8.50")

	txTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.ID == tx.ID && c.Title == "Lunch" && c.Amount.Equal(tx.Amount) && c.TransactionDate.Equal(tx.Date)
	})).Return(tx.ID, nil)

	action := &CreateTransaction{Transaction: tx}
	require.NoError(t, action.Perform(context.Background(), w))
	assert.Equal(t, tx.ID, action.CreatedID)
}

func TestCreateTransaction_Invalid(t *testing.T) {
	w, _, _ := newTestWriter(t)
	action := &CreateTransaction{Transaction: sample("", "-1")}
	assert.ErrorIs(t, action.Perform(context.Background(), w), ledger.ErrEmptyTitle)
}

func TestImportTransactions_Perform(t *testing.T) {
	w, txTable, _ := newTestWriter(t)
	batch := []ledger.Transaction{sample("A", "-1"), sample("B", "2")}

	txTable.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *sqlconfig.TransactionCreate) (uuid.UUID, error) {
			return c.ID, nil
		}).Times(2)

	action := &ImportTransactions{Transactions: batch}
	require.NoError(t, action.Perform(context.Background(), w))
	assert.Equal(t, []uuid.UUID{batch[0].ID, batch[1].ID}, action.CreatedIDs)
}

func TestImportTransactions_ValidatesBeforeWriting(t *testing.T) {
	w, _, _ := newTestWriter(t)
	bad := sample("B", "2")
	bad.Category = ""

	action := &ImportTransactions{Transactions: []ledger.Transaction{sample("A", "-1"), bad}}
	err := action.Perform(context.Background(), w)
	assert.ErrorIs(t, err, ledger.ErrEmptyCategory)
	assert.Nil(t, action.CreatedIDs)
}

func TestImportTransactions_InsertErrorFailsBatch(t *testing.T) {
	w, txTable, _ := newTestWriter(t)
	dbErr := errors.New("unique violation")

	txTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, dbErr).Once()

	action := &ImportTransactions{Transactions: []ledger.Transaction{sample("A", "-1"), sample("B", "-2")}}
	assert.ErrorIs(t, action.Perform(context.Background(), w), dbErr)
	assert.Nil(t, action.CreatedIDs)
}

func TestImportTransactions_Empty(t *testing.T) {
	w, _, _ := newTestWriter(t)
	assert.ErrorIs(t, (&ImportTransactions{}).Perform(context.Background(), w), ErrEmptyImport)
}

func TestCreateRecurringRule_Perform(t *testing.T) {
	w, _, ruleTable := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	ruleTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.RecurringRuleCreate) bool {
		return c.Title == "Rent" && c.DayOfMonth == 1 && c.Active
	})).Return(id, nil)

	action := &CreateRecurringRule{Rule: recurring.Rule{
		Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420), DayOfMonth: 1, Active: true,
	}}
	require.NoError(t, action.Perform(context.Background(), w))
	assert.Equal(t, id, action.CreatedID)

	bad := &CreateRecurringRule{Rule: recurring.Rule{Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420), DayOfMonth: 30}}
	assert.ErrorIs(t, bad.Perform(context.Background(), w), recurring.ErrDayOutOfRange)
}

func TestSetRecurringRuleActive_Perform(t *testing.T) {
	w, _, ruleTable := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	ruleTable.EXPECT().SetActive(mock.Anything, id, false).Return(sqlconfig.ErrNotFound)

	err := (&SetRecurringRuleActive{ID: id}).Perform(context.Background(), w)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestApplyRecurring_Perform(t *testing.T) {
	w, txTable, ruleTable := newTestWriter(t)
	cal := calendar.UTC()
	month := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	ruleTable.EXPECT().List(mock.Anything, true).Return([]*sqlconfig.RecurringRule{
		{Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420), DayOfMonth: 1, Active: true},
		{Title: "Netflix", Category: "Subscriptions", Amount: decimal.RequireFromString("-9.99"), DayOfMonth: 3, Active: true},
	}, nil)

	txTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.From.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]*sqlconfig.Transaction{
		{Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420), TransactionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	txTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Title == "Netflix" && c.TransactionDate.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	})).Return(uuid.Must(uuid.NewV4()), nil).Once()

	action := &ApplyRecurring{Calendar: cal, Month: month}
	require.NoError(t, action.Perform(context.Background(), w))
	require.Len(t, action.Created, 1)
	assert.Equal(t, "Netflix", action.Created[0].Title)
}
