package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/constants"
	"github.com/hance08/ynab2splitwise/internal/model"
	"github.com/hance08/ynab2splitwise/internal/utils"
)

type BackfillService struct {
	factory   ClientFactory
	logger    logrus.FieldLogger
	flags     model.FlagScheme
	batchSize int
}

func NewBackfillService(factory ClientFactory, logger logrus.FieldLogger, flags model.FlagScheme) *BackfillService {
	return &BackfillService{
		factory:   factory,
		logger:    logger,
		flags:     flags,
		batchSize: constants.BackfillBatchSize,
	}
}

type BackfillStats struct {
	Count int
	First model.Transaction
	Last  model.Transaction
	// Total is the sum of absolute amounts in currency units.
	Total decimal.Decimal
}

// SplitPreview is what a dry run reports for one transaction.
type SplitPreview struct {
	Transaction model.Transaction
	Remaining   int64
	Split       int64
}

type BatchFailure struct {
	Start int
	Size  int
	Err   error
}

type BackfillResult struct {
	Account       string
	DryRun        bool
	Stats         *BackfillStats // nil when nothing needed backfilling
	Previews      []SplitPreview
	Targeted      int
	Processed     int
	FailedBatches []BatchFailure
}

// SelectBackfillTargets keeps synced transactions that were never split,
// sorted by date. Stable, so same-day transactions keep source order.
func SelectBackfillTargets(flags model.FlagScheme, txs []model.Transaction) []model.Transaction {
	var targets []model.Transaction
	for _, tx := range txs {
		if flags.NeedsBackfill(tx) {
			targets = append(targets, tx)
		}
	}
	slices.SortStableFunc(targets, func(a, b model.Transaction) int {
		return strings.Compare(a.Date, b.Date)
	})
	return targets
}

// ComputeStats expects targets already sorted by date and non-empty.
func ComputeStats(targets []model.Transaction) *BackfillStats {
	stats := &BackfillStats{
		Count: len(targets),
		First: targets[0],
		Last:  targets[len(targets)-1],
		Total: decimal.Zero,
	}
	for _, tx := range targets {
		stats.Total = stats.Total.Add(utils.FromMilliunits(tx.Amount).Abs())
	}
	return stats
}

func PreviewSplits(targets []model.Transaction) []SplitPreview {
	previews := make([]SplitPreview, 0, len(targets))
	for _, tx := range targets {
		split, remaining := model.SplitAmount(tx.Amount)
		previews = append(previews, SplitPreview{Transaction: tx, Remaining: remaining, Split: split})
	}
	return previews
}

// Backfill splits every synced-but-unsplit transaction of the account. In
// dry-run mode it only reads; otherwise it writes in batches and keeps going
// past failed batches without retrying them.
func (s *BackfillService) Backfill(ctx context.Context, acc config.AccountConfig, dryRun bool) (*BackfillResult, error) {
	log := s.logger.WithField("account", acc.Name)
	budget := s.factory.BudgetClient(acc)

	all, err := budget.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	result := &BackfillResult{Account: acc.Name, DryRun: dryRun}

	targets := SelectBackfillTargets(s.flags, all)
	if len(targets) == 0 {
		log.Info("No transactions found that need backfilling")
		return result, nil
	}

	stats := ComputeStats(targets)
	result.Stats = stats
	result.Targeted = stats.Count

	log.WithFields(logrus.Fields{
		"count":      stats.Count,
		"first_date": stats.First.Date,
		"last_date":  stats.Last.Date,
		"total":      utils.FormatDollars(stats.Total),
	}).Infof("Found %d transactions to backfill", stats.Count)

	if dryRun {
		result.Previews = PreviewSplits(targets)
		log.Info("Dry run, no changes made")
		return result, nil
	}

	start := 0
	for batch := range slices.Chunk(targets, s.batchSize) {
		batchLog := log.WithFields(logrus.Fields{"batch_start": start, "batch_size": len(batch)})

		if err := budget.MarkSynced(ctx, batch, true); err != nil {
			batchLog.WithError(err).Error("Failed to backfill batch")
			result.FailedBatches = append(result.FailedBatches, BatchFailure{Start: start, Size: len(batch), Err: err})
		} else {
			result.Processed += len(batch)
			batchLog.Infof("Successfully backfilled batch of %d transactions", len(batch))
		}
		start += len(batch)
	}

	log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"targeted":  result.Targeted,
	}).Info("Backfill finished")

	return result, nil
}
