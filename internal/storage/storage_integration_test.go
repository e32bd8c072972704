//go:build integration

package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/migrations"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("budget"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	status, err := migrations.Up(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), status.PreMigrationVersion)
	assert.Equal(t, uint(2), status.PostMigrationVersion)

	return storage.NewStorageFromDB(db)
}

func TestStorage_Transactions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	june := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	id, err := s.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Title:           "Lidl",
		Category:        "Groceries",
		Amount:          decimal.RequireFromString("-23.40"),
		TransactionDate: june,
	})
	require.NoError(t, err)

	got, err := s.Transactions.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lidl", got.Title)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("-23.40")))
	assert.True(t, got.TransactionDate.Equal(june))

	_, err = s.Transactions.FindByID(ctx, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	_, err = s.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Title: "Salary", Category: "Income", Amount: decimal.NewFromInt(1500),
		TransactionDate: june.AddDate(0, -1, 0),
	})
	require.NoError(t, err)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := s.Transactions.List(ctx, &sqlconfig.TransactionFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)

	rows, err = s.Transactions.List(ctx, &sqlconfig.TransactionFilter{OldestFirst: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Salary", rows[0].Title)
}

func TestStorage_WriterRollback(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	w, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420),
	})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	rows, err := s.Transactions.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	w, err = s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(-420),
	})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	rows, err = s.Transactions.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStorage_RecurringRules(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	id, err := s.RecurringRules.Insert(ctx, &sqlconfig.RecurringRuleCreate{
		Title: "Netflix", Category: "Subscriptions", Amount: decimal.RequireFromString("-9.99"),
		DayOfMonth: 3, Active: true,
	})
	require.NoError(t, err)

	rules, err := s.RecurringRules.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].DayOfMonth)

	require.NoError(t, s.RecurringRules.SetActive(ctx, id, false))
	rules, err = s.RecurringRules.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, rules)

	assert.ErrorIs(t, s.RecurringRules.SetActive(ctx, uuid.Must(uuid.NewV4()), true), sqlconfig.ErrNotFound)
}
