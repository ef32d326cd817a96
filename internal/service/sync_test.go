package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ynab2splitwise/internal/model"
)

func newSyncTestService(t *testing.T) (*SyncService, *mockBudgetClient, *mockExpenseClient, *test.Hook) {
	t.Helper()
	budget := &mockBudgetClient{}
	expense := &mockExpenseClient{}
	t.Cleanup(func() {
		budget.AssertExpectations(t)
		expense.AssertExpectations(t)
	})

	logger, hook := test.NewNullLogger()
	svc := NewSyncService(&stubFactory{budget: budget, expense: expense}, logger, 1)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	}
	return svc, budget, expense, hook
}

func queued(id string, amount int64, payee, memo string) model.Transaction {
	return model.Transaction{
		ID:        id,
		Date:      "2024-03-01",
		PayeeName: payee,
		Memo:      memo,
		Amount:    amount,
		FlagColor: "blue",
	}
}

// -- Sync tests --

func TestSync_Success(t *testing.T) {
	svc, budget, expense, _ := newSyncTestService(t)

	tx := queued("t1", -5000, "Cafe", "")
	budget.On("FetchQueued", mock.Anything, mock.MatchedBy(func(since *time.Time) bool {
		return since != nil && since.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]model.Transaction{tx}, nil)
	expense.On("CreateExpense", mock.Anything, "Cafe", "5.00", "2024-03-01").Return(nil)
	budget.On("MarkSynced", mock.Anything, []model.Transaction{tx}, false).Return(nil)

	result, err := svc.Sync(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Candidates)
	assert.Equal(t, []model.Transaction{tx}, result.Synced)
	assert.Empty(t, result.Failed)
	assert.NoError(t, result.MarkErr)
}

func TestSync_OneFailureDoesNotAbortBatch(t *testing.T) {
	svc, budget, expense, _ := newSyncTestService(t)

	t1 := queued("t1", -1000, "A", "one")
	t2 := queued("t2", -2000, "B", "two")
	t3 := queued("t3", -3000, "C", "three")

	budget.On("FetchQueued", mock.Anything, mock.Anything).Return([]model.Transaction{t1, t2, t3}, nil)
	expense.On("CreateExpense", mock.Anything, "A one", "1.00", "2024-03-01").Return(nil)
	expense.On("CreateExpense", mock.Anything, "B two", "2.00", "2024-03-01").Return(errors.New("splitwise down"))
	expense.On("CreateExpense", mock.Anything, "C three", "3.00", "2024-03-01").Return(nil)
	budget.On("MarkSynced", mock.Anything, []model.Transaction{t1, t3}, false).Return(nil)

	result, err := svc.Sync(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Len(t, result.Synced, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "t2", result.Failed[0].Transaction.ID)
	budget.AssertNumberOfCalls(t, "MarkSynced", 1)
}

func TestSync_NoCandidates(t *testing.T) {
	svc, budget, expense, hook := newSyncTestService(t)

	budget.On("FetchQueued", mock.Anything, mock.Anything).Return([]model.Transaction{}, nil)

	result, err := svc.Sync(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Candidates)
	assert.Equal(t, "Synced 0 transactions", hook.LastEntry().Message)
	budget.AssertNotCalled(t, "MarkSynced", mock.Anything, mock.Anything, mock.Anything)
	expense.AssertNotCalled(t, "CreateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSync_AllExpensesFail(t *testing.T) {
	svc, budget, expense, _ := newSyncTestService(t)

	budget.On("FetchQueued", mock.Anything, mock.Anything).Return([]model.Transaction{queued("t1", -1, "A", "")}, nil)
	expense.On("CreateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("nope"))

	result, err := svc.Sync(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Empty(t, result.Synced)
	budget.AssertNotCalled(t, "MarkSynced", mock.Anything, mock.Anything, mock.Anything)
}

func TestSync_MarkSyncedFailureIsReported(t *testing.T) {
	svc, budget, expense, hook := newSyncTestService(t)

	tx := queued("t1", -5000, "Cafe", "")
	budget.On("FetchQueued", mock.Anything, mock.Anything).Return([]model.Transaction{tx}, nil)
	expense.On("CreateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	budget.On("MarkSynced", mock.Anything, mock.Anything, false).Return(errors.New("patch failed"))

	result, err := svc.Sync(context.Background(), testAccount)

	require.NoError(t, err, "flag update failures do not fail the pipeline")
	assert.EqualError(t, result.MarkErr, "patch failed")
	assert.Len(t, result.Synced, 1)

	var sawError bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Failed to set transactions as synced" {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestSync_FetchError(t *testing.T) {
	svc, budget, _, _ := newSyncTestService(t)

	budget.On("FetchQueued", mock.Anything, mock.Anything).Return(nil, errors.New("unauthorized"))

	result, err := svc.Sync(context.Background(), testAccount)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSinceDate_UsesLookBackWindow(t *testing.T) {
	svc, _, _, _ := newSyncTestService(t)
	svc.sinceDays = 7

	assert.Equal(t, time.Date(2024, 2, 24, 0, 0, 0, 0, time.UTC), svc.sinceDate())
}

func TestExpenseDescription(t *testing.T) {
	assert.Equal(t, "Cafe", ExpenseDescription(model.Transaction{PayeeName: "Cafe"}))
	assert.Equal(t, "Cafe lunch with Sam", ExpenseDescription(model.Transaction{PayeeName: "Cafe", Memo: "lunch with Sam"}))
}
