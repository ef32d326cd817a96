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

type backfillFlags struct {
	DryRun  bool
	Account string
}

type backfillRunner struct {
	cfg   *config.Config
	flags *backfillFlags
}

func NewBackfillCmd(opts *rootOptions) *cobra.Command {
	flags := &backfillFlags{}

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Split previously synced transactions with the Splitwise category",
		Long: `Find transactions flagged as synced that have no subtransactions and split
each one in two: the original category keeps one half and the Splitwise
category takes the other.

Updates are sent in batches of 100. A failed batch is logged and skipped;
the command still exits successfully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &backfillRunner{
				cfg:   opts.cfg,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Show what would be done without making actual changes")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Only backfill the named account")

	return cmd
}

func (r *backfillRunner) Run(ctx context.Context) error {
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

	log.Info("Starting YNAB to Splitwise backfill")
	if r.flags.DryRun {
		log.Info("Running in DRY RUN mode - no changes will be made")
	}

	failed := svc.Runner.RunAccounts(ctx, "Backfill", accounts,
		func(ctx context.Context, acc config.AccountConfig, logData *logging.LogData) error {
			ui.PrintL1Title("Account: %s", acc.Name)

			result, err := svc.Backfill.Backfill(ctx, acc, r.flags.DryRun)
			if err != nil {
				pterm.Error.Printf("Backfill failed for %s: %v\n", acc.Name, err)
				return err
			}

			logData.AddData("targeted", result.Targeted)
			logData.AddData("processed", result.Processed)
			logData.AddData("failed_batches", len(result.FailedBatches))

			if result.DryRun && len(result.Previews) > 0 {
				if err := views.RenderBackfillPreview(result.Previews); err != nil {
					return err
				}
			}
			return views.RenderBackfillSummary(result)
		})

	log.WithField("failed_accounts", failed).Info("Finished YNAB to Splitwise backfill")
	if failed > 0 {
		pterm.Warning.Printf("%d of %d accounts failed, see the log for details\n", failed, len(accounts))
	}

	return nil
}
