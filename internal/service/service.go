package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/model"
)

// BudgetClient is the subset of the budgeting service the pipelines use.
type BudgetClient interface {
	FetchQueued(ctx context.Context, since *time.Time) ([]model.Transaction, error)
	FetchAll(ctx context.Context) ([]model.Transaction, error)
	MarkSynced(ctx context.Context, txs []model.Transaction, split bool) error
}

// ExpenseClient creates shared expenses.
type ExpenseClient interface {
	CreateExpense(ctx context.Context, description, cost, date string) error
}

// ClientFactory builds fresh clients for one account.
type ClientFactory interface {
	BudgetClient(acc config.AccountConfig) BudgetClient
	ExpenseClient(acc config.AccountConfig) ExpenseClient
}

type Service struct {
	Sync     *SyncService
	Backfill *BackfillService
	Runner   *Runner
}

func NewService(cfg *config.Config, logger logrus.FieldLogger, factory ClientFactory) *Service {
	return &Service{
		Sync:     NewSyncService(factory, logger, cfg.Sync.SinceDays),
		Backfill: NewBackfillService(factory, logger, cfg.Flags()),
		Runner:   NewRunner(logger),
	}
}
