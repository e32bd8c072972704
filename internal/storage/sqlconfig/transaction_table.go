package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{"id", "title", "category", "amount", "transaction_date", "created_at"}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// NewTransactionsTableWithExecutor binds the table to an existing executor, usually a bob.Tx.
func NewTransactionsTableWithExecutor(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new transaction and returns its ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id := create.ID
	if id.IsNil() {
		var err error
		if id, err = uuid.NewV4(); err != nil {
			return uuid.Nil, err
		}
	}
	date := create.TransactionDate
	if date.IsZero() {
		date = time.Now()
	}

	q := psql.Insert(
		im.Into(transactionsTableName, "id", "title", "category", "amount", "transaction_date"),
		im.Values(
			psql.Arg(id),
			psql.Arg(create.Title),
			psql.Arg(create.Category),
			psql.Arg(create.Amount),
			psql.Arg(date),
		),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest transaction date first
// unless OldestFirst is set. Nil filter returns all. A positive Limit fetches
// one extra row so callers can detect a following page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}

	oldestFirst := false
	if filter != nil {
		oldestFirst = filter.OldestFirst
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LT(psql.Arg(*filter.To))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	if oldestFirst {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("transaction_date")).Asc(),
			sm.OrderBy(psql.Quote("created_at")).Asc(),
			sm.OrderBy(psql.Quote("id")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("transaction_date")).Desc(),
			sm.OrderBy(psql.Quote("created_at")).Desc(),
			sm.OrderBy(psql.Quote("id")).Desc(),
		)
	}

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
