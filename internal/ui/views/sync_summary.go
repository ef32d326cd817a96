package views

import (
	"github.com/hance08/ynab2splitwise/internal/service"
	"github.com/hance08/ynab2splitwise/internal/utils"
	"github.com/pterm/pterm"
)

func RenderSyncResult(result *service.SyncResult) error {
	if result.Candidates == 0 {
		pterm.Info.Printf("No queued transactions since %s\n", result.Since.Format("2006-01-02"))
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Payee", "Amount", "Status"},
	}
	for _, tx := range result.Synced {
		tableData = append(tableData, []string{tx.Date, tx.PayeeName, utils.FormatMilliunits(tx.Amount), pterm.Green("Expensed")})
	}
	for _, f := range result.Failed {
		tableData = append(tableData, []string{f.Transaction.Date, f.Transaction.PayeeName, utils.FormatMilliunits(f.Transaction.Amount), pterm.Red("Failed")})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if result.MarkErr != nil {
		pterm.Warning.Printf("%d expenses created but flags were not updated; they will be expensed again on the next run\n", len(result.Synced))
	}
	pterm.Success.Printf("Synced %d of %d transactions\n", len(result.Synced), result.Candidates)
	return nil
}
