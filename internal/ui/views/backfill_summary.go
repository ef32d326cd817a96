package views

import (
	"fmt"

	"github.com/hance08/ynab2splitwise/internal/service"
	"github.com/hance08/ynab2splitwise/internal/ui"
	"github.com/hance08/ynab2splitwise/internal/utils"
	"github.com/pterm/pterm"
)

func RenderBackfillSummary(result *service.BackfillResult) error {
	if result.Stats == nil {
		pterm.Info.Println("No transactions found that need backfilling")
		return nil
	}
	stats := result.Stats

	title := "Backfill Summary"
	countLabel := "Transactions processed"
	count := fmt.Sprintf("%d / %d", result.Processed, result.Targeted)
	if result.DryRun {
		title = "Summary"
		countLabel = "Transactions to be updated"
		count = fmt.Sprintf("%d", result.Targeted)
	}

	ui.PrintL2Title("%s", title)

	tableData := pterm.TableData{
		{countLabel, count},
		{"First transaction", fmt.Sprintf("%s (%s)", stats.First.Date, stats.First.PayeeName)},
		{"Last transaction", fmt.Sprintf("%s (%s)", stats.Last.Date, stats.Last.PayeeName)},
		{"Total amount split", utils.FormatDollars(stats.Total)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if !result.DryRun && len(result.FailedBatches) > 0 {
		for _, b := range result.FailedBatches {
			pterm.Warning.Printf("Batch starting at index %d (%d transactions) failed: %v\n", b.Start, b.Size, b.Err)
		}
	}
	return nil
}
