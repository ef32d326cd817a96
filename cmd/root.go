package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/constants"
	"github.com/hance08/ynab2splitwise/internal/errhandler"
)

var errConfigNotFound = errors.New("no configuration file found, run `ynab2splitwise init` to create one")

// rootOptions is shared by every subcommand. cfg is filled in by the root
// PersistentPreRunE before any RunE executes.
type rootOptions struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Copy flagged YNAB transactions to a Splitwise group",
		Long: `ynab2splitwise creates an equally split Splitwise expense for every YNAB
transaction carrying the queued flag color, then re-flags it as synced.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(viper.New(), opts.cfgFile)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(NewSyncCmd(opts))
	rootCmd.AddCommand(NewBackfillCmd(opts))
	rootCmd.AddCommand(NewAccountsCmd(opts))
	rootCmd.AddCommand(NewInitCmd(opts))

	return rootCmd
}

// initConfig reads the YAML config into a Config. Without an explicit path
// it looks for config.yml/config.yaml in the working directory, then in the
// user config directory. Environment variables override file values, e.g.
// YNAB_QUEUED_COLOR for ynab.queued_color.
func initConfig(v *viper.Viper, cfgFile string) (*config.Config, error) {
	config.RegisterDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if appDir, err := getAppDataDir(); err == nil {
			v.AddConfigPath(appDir)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("log.level", "LOG_LEVEL", "LOGLEVEL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}

		return nil, errConfigNotFound
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
