package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/ui"
	"github.com/hance08/ynab2splitwise/internal/ui/prompts"
	"github.com/hance08/ynab2splitwise/internal/validation"
)

const defaultConfigFile = "config.yml"

type initRunner struct {
	path string
}

func NewInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or extend the configuration file interactively",
		Long: `Walk through the fields of one or more accounts and write them to the
configuration file. Without --config the file is ./config.yml. Existing
accounts in the file are kept.`,
		Args: cobra.NoArgs,
		// The config may not exist yet, so skip the root loader.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				p, err := prompts.PromptInput("Config file path", defaultConfigFile, nil)
				if err != nil {
					return err
				}
				path = p
			}
			runner := &initRunner{path: path}
			return runner.Run()
		},
	}
}

func (r *initRunner) Run() error {
	cfg, existing, err := loadOrDefault(r.path)
	if err != nil {
		return err
	}

	ui.PrintL1Title("ynab2splitwise setup")
	if existing {
		pterm.Info.Printf("Adding accounts to %s (%d already configured)\n", r.path, len(cfg.Accounts))
	} else {
		queued, synced, err := prompts.PromptFlagColors(cfg.YNAB.QueuedColor, cfg.YNAB.SyncedColor)
		if err != nil {
			return err
		}
		if queued == synced {
			return fmt.Errorf("queued and synced flag colors must differ")
		}
		cfg.YNAB.QueuedColor = queued
		cfg.YNAB.SyncedColor = synced
	}

	names := accountNames(cfg)
	validator := validation.NewAccountValidator(names)
	for {
		acc, err := prompts.PromptAccount(validator)
		if err != nil {
			return err
		}
		cfg.Accounts = append(cfg.Accounts, acc)
		names[strings.ToLower(acc.Name)] = true

		more, err := prompts.PromptConfirm("Add another account?", false)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := writeConfig(r.path, cfg); err != nil {
		return err
	}

	pterm.Success.Printf("Configuration saved to %s (%d accounts)\n", r.path, len(cfg.Accounts))
	return nil
}

func loadOrDefault(path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.NewDefault(), false, nil
	}

	cfg, err := initConfig(viper.New(), path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// writeConfig stores cfg as YAML at path, readable only by the owner since
// it holds API keys.
func writeConfig(path string, cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigPermissions(0600)

	accounts := make([]map[string]interface{}, 0, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		accounts = append(accounts, map[string]interface{}{
			"name":              acc.Name,
			"ynab_api_key":      acc.YNABAPIKey,
			"budget_id":         acc.BudgetID,
			"splitwise_api_key": acc.SplitwiseAPIKey,
			"group_id":          acc.GroupID,
		})
	}

	v.Set("accounts", accounts)
	v.Set("ynab.base_url", cfg.YNAB.BaseURL)
	v.Set("ynab.queued_color", cfg.YNAB.QueuedColor)
	v.Set("ynab.synced_color", cfg.YNAB.SyncedColor)
	v.Set("splitwise.base_url", cfg.Splitwise.BaseURL)
	v.Set("sync.since_days", cfg.Sync.SinceDays)
	v.Set("http.timeout", cfg.HTTP.Timeout.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type configuredNames map[string]bool

func (n configuredNames) HasAccount(name string) bool {
	return n[strings.ToLower(strings.TrimSpace(name))]
}

func accountNames(cfg *config.Config) configuredNames {
	names := make(configuredNames, len(cfg.Accounts))
	for _, acc := range cfg.Accounts {
		names[strings.ToLower(acc.Name)] = true
	}
	return names
}
