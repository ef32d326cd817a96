package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/ynab2splitwise/internal/constants"
	"github.com/hance08/ynab2splitwise/internal/model"
	"github.com/spf13/viper"
)

var (
	ErrNoAccounts      = errors.New("no accounts configured")
	ErrAccountNotFound = errors.New("account not found in configuration")
)

type Config struct {
	Accounts   []AccountConfig `mapstructure:"accounts"`
	YNAB       YNABConfig      `mapstructure:"ynab"`
	Splitwise  SplitwiseConfig `mapstructure:"splitwise"`
	Sync       SyncConfig      `mapstructure:"sync"`
	HTTP       HTTPConfig      `mapstructure:"http"`
	Log        LogConfig       `mapstructure:"log"`
	ConfigPath string          `mapstructure:"-"`
}

// AccountConfig pairs one budget with one expense group.
type AccountConfig struct {
	Name            string `mapstructure:"name"`
	YNABAPIKey      string `mapstructure:"ynab_api_key"`
	BudgetID        string `mapstructure:"budget_id"`
	SplitwiseAPIKey string `mapstructure:"splitwise_api_key"`
	GroupID         int64  `mapstructure:"group_id"`
}

type YNABConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	QueuedColor string `mapstructure:"queued_color"`
	SyncedColor string `mapstructure:"synced_color"`
}

type SplitwiseConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SyncConfig struct {
	SinceDays int `mapstructure:"since_days"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		YNAB: YNABConfig{
			BaseURL:     constants.DefaultYNABBaseURL,
			QueuedColor: constants.DefaultQueuedColor,
			SyncedColor: constants.DefaultSyncedColor,
		},
		Splitwise: SplitwiseConfig{BaseURL: constants.DefaultSplitwiseBaseURL},
		Sync:      SyncConfig{SinceDays: constants.DefaultSinceDays},
		HTTP:      HTTPConfig{Timeout: constants.DefaultHTTPTimeout},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// RegisterDefaults seeds v with every scalar key so AutomaticEnv can
// override keys that are absent from the file.
func RegisterDefaults(v *viper.Viper) {
	def := NewDefault()

	v.SetDefault("ynab.base_url", def.YNAB.BaseURL)
	v.SetDefault("ynab.queued_color", def.YNAB.QueuedColor)
	v.SetDefault("ynab.synced_color", def.YNAB.SyncedColor)
	v.SetDefault("splitwise.base_url", def.Splitwise.BaseURL)
	v.SetDefault("sync.since_days", def.Sync.SinceDays)
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
}

// Flags returns the flag color scheme used to track sync state.
func (c *Config) Flags() model.FlagScheme {
	return model.FlagScheme{
		Queued: c.YNAB.QueuedColor,
		Synced: c.YNAB.SyncedColor,
	}
}

// SelectAccounts returns every account, or only the one called name.
func (c *Config) SelectAccounts(name string) ([]AccountConfig, error) {
	if name == "" {
		return c.Accounts, nil
	}
	for _, acc := range c.Accounts {
		if strings.EqualFold(acc.Name, name) {
			return []AccountConfig{acc}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, name)
}

func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return ErrNoAccounts
	}

	seen := make(map[string]bool, len(c.Accounts))
	for i, acc := range c.Accounts {
		if err := acc.Validate(); err != nil {
			return fmt.Errorf("accounts[%d]: %w", i, err)
		}
		key := strings.ToLower(acc.Name)
		if seen[key] {
			return fmt.Errorf("accounts[%d]: duplicate account name %q", i, acc.Name)
		}
		seen[key] = true
	}

	if !constants.FlagColors[c.YNAB.QueuedColor] {
		return fmt.Errorf("ynab.queued_color: unsupported flag color %q", c.YNAB.QueuedColor)
	}
	if !constants.FlagColors[c.YNAB.SyncedColor] {
		return fmt.Errorf("ynab.synced_color: unsupported flag color %q", c.YNAB.SyncedColor)
	}
	if c.YNAB.QueuedColor == c.YNAB.SyncedColor {
		return fmt.Errorf("ynab.queued_color and ynab.synced_color must differ (both %q)", c.YNAB.QueuedColor)
	}
	if c.Sync.SinceDays < 0 {
		return fmt.Errorf("sync.since_days must not be negative, got %d", c.Sync.SinceDays)
	}

	return nil
}

func (a AccountConfig) Validate() error {
	name := strings.TrimSpace(a.Name)
	switch {
	case name == "":
		return errors.New("name is required")
	case len(name) > constants.MaxNameLen:
		return fmt.Errorf("name exceeds %d characters", constants.MaxNameLen)
	case a.YNABAPIKey == "":
		return fmt.Errorf("account %q: ynab_api_key is required", a.Name)
	case a.BudgetID == "":
		return fmt.Errorf("account %q: budget_id is required", a.Name)
	case a.SplitwiseAPIKey == "":
		return fmt.Errorf("account %q: splitwise_api_key is required", a.Name)
	case a.GroupID <= 0:
		return fmt.Errorf("account %q: group_id must be a positive integer", a.Name)
	}
	return nil
}
