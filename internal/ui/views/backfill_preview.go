package views

import (
	"github.com/hance08/ynab2splitwise/internal/service"
	"github.com/hance08/ynab2splitwise/internal/ui"
	"github.com/hance08/ynab2splitwise/internal/utils"
	"github.com/pterm/pterm"
)

// RenderBackfillPreview lists the split each transaction would receive.
func RenderBackfillPreview(previews []service.SplitPreview) error {
	ui.PrintL2Title("DRY RUN - The following transactions would be split")

	tableData := pterm.TableData{
		{"Date", "Payee", "Amount", "Original category", "Splitwise category"},
	}
	for _, p := range previews {
		tableData = append(tableData, []string{
			p.Transaction.Date,
			p.Transaction.PayeeName,
			utils.FormatCost(p.Transaction.Amount),
			utils.FormatCost(p.Remaining),
			utils.FormatCost(p.Split),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
