package views

import (
	"fmt"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/ui"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(cfg *config.Config) error {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None)"
	}
	pterm.DefaultSection.Println("Configuration")
	settings := pterm.TableData{
		{"Configuration File", configPath},
		{"Queued flag", pterm.Blue(cfg.YNAB.QueuedColor)},
		{"Synced flag", pterm.Green(cfg.YNAB.SyncedColor)},
		{"Look-back window", fmt.Sprintf("%d day(s)", cfg.Sync.SinceDays)},
	}
	if err := pterm.DefaultTable.WithData(settings).Render(); err != nil {
		return err
	}

	if len(cfg.Accounts) == 0 {
		pterm.Warning.Println("No accounts configured")
		return nil
	}

	tableData := pterm.TableData{
		{"Name", "Budget ID", "YNAB key", "Group ID", "Splitwise key"},
	}
	for _, acc := range cfg.Accounts {
		tableData = append(tableData, []string{
			acc.Name,
			acc.BudgetID,
			ui.MaskSecret(acc.YNABAPIKey),
			fmt.Sprintf("%d", acc.GroupID),
			ui.MaskSecret(acc.SplitwiseAPIKey),
		})
	}

	pterm.DefaultSection.Println("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(cfg.Accounts))
	return nil
}
