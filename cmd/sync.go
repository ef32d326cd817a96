package cmd

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ynab2splitwise/internal/app"
	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/logging"
	"github.com/hance08/ynab2splitwise/internal/ui"
	"github.com/hance08/ynab2splitwise/internal/ui/views"
)

type syncFlags struct {
	Account   string
	SinceDays int
}

type syncRunner struct {
	cfg          *config.Config
	flags        *syncFlags
	sinceChanged bool
}

func NewSyncCmd(opts *rootOptions) *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create Splitwise expenses for queued YNAB transactions",
		Long: `Create an equally split Splitwise expense for every YNAB transaction flagged
with the queued color inside the look-back window, then flag those
transactions with the synced color.

Accounts are processed one after another; a failure in one account is
logged and does not stop the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &syncRunner{
				cfg:          opts.cfg,
				flags:        flags,
				sinceChanged: cmd.Flags().Changed("since-days"),
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Only sync the named account")
	cmd.Flags().IntVar(&flags.SinceDays, "since-days", 0, "Override the look-back window (sync.since_days)")

	return cmd
}

func (r *syncRunner) Run(ctx context.Context) error {
	if r.sinceChanged {
		r.cfg.Sync.SinceDays = r.flags.SinceDays
	}

	application, err := app.NewApp(r.cfg)
	if err != nil {
		return err
	}

	accounts, err := r.cfg.SelectAccounts(r.flags.Account)
	if err != nil {
		return err
	}

	log := application.Logger
	svc := application.Service

	log.Info("Starting YNAB to Splitwise sync")

	failed := svc.Runner.RunAccounts(ctx, "Sync", accounts,
		func(ctx context.Context, acc config.AccountConfig, logData *logging.LogData) error {
			ui.PrintL1Title("Account: %s", acc.Name)

			result, err := svc.Sync.Sync(ctx, acc)
			if err != nil {
				pterm.Error.Printf("Sync failed for %s: %v\n", acc.Name, err)
				return err
			}

			logData.AddData("candidates", result.Candidates)
			logData.AddData("synced", len(result.Synced))
			logData.AddData("failed", len(result.Failed))

			return views.RenderSyncResult(result)
		})

	log.WithField("failed_accounts", failed).Info("Finished YNAB to Splitwise sync")
	if failed > 0 {
		pterm.Warning.Printf("%d of %d accounts failed, see the log for details\n", failed, len(accounts))
	}

	return nil
}
