package prompts

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/validation"
)

// PromptAccount walks through the fields of one account entry.
func PromptAccount(v *validation.AccountValidator) (config.AccountConfig, error) {
	var name, ynabKey, budgetID, splitwiseKey, groupID string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account name").
				Description("A label used in logs, e.g. \"Household\"").
				Value(&name).
				Validate(v.ValidateAccountName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("YNAB personal access token").
				EchoMode(huh.EchoModePassword).
				Value(&ynabKey).
				Validate(validation.Required("YNAB token")),
			huh.NewInput().
				Title("YNAB budget ID").
				Description("The UUID in the budget URL, or \"last-used\"").
				Value(&budgetID).
				Validate(validation.Required("budget ID")),
		).Title("YNAB"),
		huh.NewGroup(
			huh.NewInput().
				Title("Splitwise API key").
				EchoMode(huh.EchoModePassword).
				Value(&splitwiseKey).
				Validate(validation.Required("Splitwise API key")),
			huh.NewInput().
				Title("Splitwise group ID").
				Description("The number in the group URL").
				Value(&groupID).
				Validate(validation.ValidateGroupID),
		).Title("Splitwise"),
	)

	if err := form.Run(); err != nil {
		return config.AccountConfig{}, err
	}

	gid, _ := strconv.ParseInt(strings.TrimSpace(groupID), 10, 64)

	return config.AccountConfig{
		Name:            strings.TrimSpace(name),
		YNABAPIKey:      strings.TrimSpace(ynabKey),
		BudgetID:        strings.TrimSpace(budgetID),
		SplitwiseAPIKey: strings.TrimSpace(splitwiseKey),
		GroupID:         gid,
	}, nil
}

// PromptFlagColors asks which colors mark queued and synced transactions.
func PromptFlagColors(queuedDefault, syncedDefault string) (queued, synced string, err error) {
	colors := []string{"red", "orange", "yellow", "green", "blue", "purple"}

	queued, err = PromptSelect("Flag color that queues a transaction for Splitwise", colors, queuedDefault)
	if err != nil {
		return "", "", err
	}

	synced, err = PromptSelect("Flag color set once a transaction is synced", colors, syncedDefault)
	if err != nil {
		return "", "", err
	}

	return queued, synced, nil
}
