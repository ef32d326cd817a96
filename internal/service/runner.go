package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/logging"
)

// AccountFunc processes a single account.
type AccountFunc func(ctx context.Context, acc config.AccountConfig, logData *logging.LogData) error

// Runner drives a pipeline over every configured account, one at a time.
type Runner struct {
	logger logrus.FieldLogger
}

func NewRunner(logger logrus.FieldLogger) *Runner {
	return &Runner{logger: logger}
}

// RunAccounts calls fn for each account in order. An error or panic in one
// account is logged and the next account still runs. It returns the number
// of accounts that failed; accounts skipped after ctx is cancelled count as
// failed too.
func (r *Runner) RunAccounts(ctx context.Context, name string, accounts []config.AccountConfig, fn AccountFunc) int {
	failed := 0

	for i, acc := range accounts {
		if err := ctx.Err(); err != nil {
			r.logger.WithError(err).WithField("skipped", len(accounts)-i).Warn("Runner stopped before all accounts were processed")
			return failed + len(accounts) - i
		}

		log := r.logger.WithField("account", acc.Name)
		err := logging.Wrap(name, log, func(ld *logging.LogData) error {
			return fn(ctx, acc, ld)
		})
		if err != nil {
			failed++
		}
	}

	return failed
}
