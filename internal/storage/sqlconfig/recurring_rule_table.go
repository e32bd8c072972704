package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const recurringRulesTableName = "recurring_rules"

var recurringRuleColumns = []any{"id", "title", "category", "amount", "day_of_month", "active", "created_at"}

var _ IRecurringRuleTable = (*RecurringRulesTable)(nil)

type RecurringRulesTable struct {
	exec bob.Executor
}

func NewRecurringRulesTable(db *sql.DB) *RecurringRulesTable {
	return &RecurringRulesTable{exec: bob.NewDB(db)}
}

func NewRecurringRulesTableWithExecutor(exec bob.Executor) *RecurringRulesTable {
	return &RecurringRulesTable{exec: exec}
}

func (t *RecurringRulesTable) Insert(ctx context.Context, create *RecurringRuleCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into(recurringRulesTableName, "id", "title", "category", "amount", "day_of_month", "active"),
		im.Values(
			psql.Arg(id),
			psql.Arg(create.Title),
			psql.Arg(create.Category),
			psql.Arg(create.Amount),
			psql.Arg(create.DayOfMonth),
			psql.Arg(create.Active),
		),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns rules in creation order.
func (t *RecurringRulesTable) List(ctx context.Context, activeOnly bool) ([]*RecurringRule, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(recurringRuleColumns...),
		sm.From(recurringRulesTableName),
	}
	if activeOnly {
		queryMods = append(queryMods, sm.Where(psql.Quote("active").EQ(psql.Arg(true))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*RecurringRule]())
}

func (t *RecurringRulesTable) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := psql.Update(
		um.Table(recurringRulesTableName),
		um.SetCol("active").ToArg(active),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
