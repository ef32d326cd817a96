package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/model"
)

type mockBudgetClient struct {
	mock.Mock
}

func (m *mockBudgetClient) FetchQueued(ctx context.Context, since *time.Time) ([]model.Transaction, error) {
	args := m.Called(ctx, since)
	txs, _ := args.Get(0).([]model.Transaction)
	return txs, args.Error(1)
}

func (m *mockBudgetClient) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]model.Transaction)
	return txs, args.Error(1)
}

func (m *mockBudgetClient) MarkSynced(ctx context.Context, txs []model.Transaction, split bool) error {
	args := m.Called(ctx, txs, split)
	return args.Error(0)
}

type mockExpenseClient struct {
	mock.Mock
}

func (m *mockExpenseClient) CreateExpense(ctx context.Context, description, cost, date string) error {
	args := m.Called(ctx, description, cost, date)
	return args.Error(0)
}

type stubFactory struct {
	budget  *mockBudgetClient
	expense *mockExpenseClient
}

func (f *stubFactory) BudgetClient(config.AccountConfig) BudgetClient {
	return f.budget
}

func (f *stubFactory) ExpenseClient(config.AccountConfig) ExpenseClient {
	return f.expense
}

var testAccount = config.AccountConfig{
	Name:            "Household",
	YNABAPIKey:      "yk",
	BudgetID:        "b1",
	SplitwiseAPIKey: "sk",
	GroupID:         42,
}

var testFlags = model.FlagScheme{Queued: "blue", Synced: "green"}
