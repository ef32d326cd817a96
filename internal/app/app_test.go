package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ynab2splitwise/internal/config"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "debug"
	cfg.Accounts = []config.AccountConfig{
		{Name: "Household", YNABAPIKey: "yk", BudgetID: "b1", SplitwiseAPIKey: "sk", GroupID: 1},
	}

	application, err := NewApp(cfg)

	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, application.Logger.Level)
	assert.NotNil(t, application.Service.Sync)
	assert.NotNil(t, application.Service.Backfill)
	assert.NotNil(t, application.Service.Runner)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	_, err := NewApp(config.NewDefault())
	assert.ErrorIs(t, err, config.ErrNoAccounts)
}

func TestNewApp_InvalidLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "chatty"
	cfg.Accounts = []config.AccountConfig{
		{Name: "Household", YNABAPIKey: "yk", BudgetID: "b1", SplitwiseAPIKey: "sk", GroupID: 1},
	}

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
