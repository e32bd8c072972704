package actions

import (
	"context"

	"github.com/carson-networks/budget-insights/internal/storage"
)

// IAction is a unit of write work executed inside one storage transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
