package service

import (
	"context"
	"testing"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// inlineProcessor performs actions synchronously against mocked tables.
type inlineProcessor struct {
	writer *storage.Writer
	calls  int
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	return action.Perform(ctx, p.writer)
}

type testDeps struct {
	store     *storage.Storage
	processor *inlineProcessor
	txTable   *sqlconfig.MockITransactionTable
	ruleTable *sqlconfig.MockIRecurringRuleTable
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	txTable := sqlconfig.NewMockITransactionTable(t)
	ruleTable := sqlconfig.NewMockIRecurringRuleTable(t)
	return testDeps{
		store:     &storage.Storage{Transactions: txTable, RecurringRules: ruleTable},
		processor: &inlineProcessor{writer: storage.NewWriter(context.Background(), nil, txTable, ruleTable)},
		txTable:   txTable,
		ruleTable: ruleTable,
	}
}
