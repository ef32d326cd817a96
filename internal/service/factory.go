package service

import (
	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/splitwise"
	"github.com/hance08/ynab2splitwise/internal/ynab"
)

type httpClientFactory struct {
	cfg *config.Config
}

// NewClientFactory returns a factory that builds HTTP clients from cfg.
func NewClientFactory(cfg *config.Config) ClientFactory {
	return &httpClientFactory{cfg: cfg}
}

func (f *httpClientFactory) BudgetClient(acc config.AccountConfig) BudgetClient {
	return ynab.NewClient(ynab.Options{
		BaseURL:  f.cfg.YNAB.BaseURL,
		APIKey:   acc.YNABAPIKey,
		BudgetID: acc.BudgetID,
		Flags:    f.cfg.Flags(),
		Timeout:  f.cfg.HTTP.Timeout,
	})
}

func (f *httpClientFactory) ExpenseClient(acc config.AccountConfig) ExpenseClient {
	return splitwise.NewClient(splitwise.Options{
		BaseURL: f.cfg.Splitwise.BaseURL,
		APIKey:  acc.SplitwiseAPIKey,
		GroupID: acc.GroupID,
		Timeout: f.cfg.HTTP.Timeout,
	})
}
