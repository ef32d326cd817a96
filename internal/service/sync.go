package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/model"
	"github.com/hance08/ynab2splitwise/internal/utils"
)

type SyncService struct {
	factory   ClientFactory
	logger    logrus.FieldLogger
	sinceDays int
	now       func() time.Time
}

func NewSyncService(factory ClientFactory, logger logrus.FieldLogger, sinceDays int) *SyncService {
	return &SyncService{
		factory:   factory,
		logger:    logger,
		sinceDays: sinceDays,
		now:       time.Now,
	}
}

// SyncResult summarises one account's sync run.
type SyncResult struct {
	Account    string
	Since      time.Time
	Candidates int
	Synced     []model.Transaction
	Failed     []FailedExpense
	// MarkErr is set when expenses were created but the flag update failed.
	// Those transactions stay queued and will be expensed again next run.
	MarkErr error
}

type FailedExpense struct {
	Transaction model.Transaction
	Err         error
}

// Sync copies queued transactions from the look-back window into the
// expense group and flags the ones that made it across as synced. A failed
// expense never stops the rest of the batch.
func (s *SyncService) Sync(ctx context.Context, acc config.AccountConfig) (*SyncResult, error) {
	log := s.logger.WithField("account", acc.Name)
	budget := s.factory.BudgetClient(acc)
	expenses := s.factory.ExpenseClient(acc)

	since := s.sinceDate()
	candidates, err := budget.FetchQueued(ctx, &since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queued transactions: %w", err)
	}

	result := &SyncResult{
		Account:    acc.Name,
		Since:      since,
		Candidates: len(candidates),
	}

	for _, tx := range candidates {
		txLog := log.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"date":           tx.Date,
			"payee":          tx.PayeeName,
			"amount":         utils.FormatMilliunits(tx.Amount),
		})
		txLog.Info("Processing transaction")

		if err := expenses.CreateExpense(ctx, ExpenseDescription(tx), utils.FormatCost(tx.Amount), tx.Date); err != nil {
			txLog.WithError(err).Error("Failed to create expense")
			result.Failed = append(result.Failed, FailedExpense{Transaction: tx, Err: err})
			continue
		}
		result.Synced = append(result.Synced, tx)
	}

	if len(result.Synced) > 0 {
		if err := budget.MarkSynced(ctx, result.Synced, false); err != nil {
			log.WithError(err).WithField("count", len(result.Synced)).
				Error("Failed to set transactions as synced")
			result.MarkErr = err
		}
	}

	log.WithField("failed", len(result.Failed)).Infof("Synced %d transactions", len(result.Synced))

	return result, nil
}

func (s *SyncService) sinceDate() time.Time {
	now := s.now()
	y, m, d := now.Date()
	return time.Date(y, m, d-s.sinceDays, 0, 0, 0, 0, now.Location())
}

// ExpenseDescription joins payee and memo the way they appear in Splitwise.
func ExpenseDescription(tx model.Transaction) string {
	return strings.TrimSpace(tx.PayeeName + " " + tx.Memo)
}
