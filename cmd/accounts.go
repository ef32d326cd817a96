package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/ui/views"
)

type accountsRunner struct {
	cfg *config.Config
}

func NewAccountsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"ls"},
		Short:   "List configured accounts",
		Long:    `Display the configuration file in use, the flag colors and every configured account with masked API keys.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &accountsRunner{cfg: opts.cfg}
			return runner.Run()
		},
	}
}

func (r *accountsRunner) Run() error {
	return views.NewAccountListView().Render(r.cfg)
}
