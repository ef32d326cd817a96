package splitwise

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ynab2splitwise/internal/remote"
)

func newTestClient(t *testing.T, status int, respBody string) (*Client, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_expense", r.URL.Path)
		assert.Equal(t, "Bearer sw-token", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(body))
		mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Options{BaseURL: srv.URL, APIKey: "sw-token", GroupID: 777, Timeout: time.Second})
	return client, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), bodies...)
	}
}

func TestCreateExpense_Success(t *testing.T) {
	client, bodies := newTestClient(t, http.StatusOK, `{"expenses":[{"id":1}],"errors":{}}`)

	err := client.CreateExpense(context.Background(), "Cafe lunch", "-5.000", "2024-03-01")

	require.NoError(t, err)
	require.Len(t, bodies(), 1)
	assert.JSONEq(t, `{
		"cost":"5.00",
		"description":"Cafe lunch",
		"group_id":777,
		"date":"2024-03-01",
		"split_equally":true
	}`, bodies()[0])
}

func TestCreateExpense_ErrorPayload(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"expenses":[],"errors":{"base":["You are not a member of this group"]}}`)

	err := client.CreateExpense(context.Background(), "Cafe", "5.00", "2024-03-01")

	var ece *ExpenseCreationError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, http.StatusOK, ece.StatusCode)
	assert.Contains(t, ece.Body, "not a member")
	assert.True(t, errors.Is(err, remote.ErrRejected))
}

func TestCreateExpense_ErrorList(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"errors":["bad cost"]}`)

	err := client.CreateExpense(context.Background(), "Cafe", "5.00", "2024-03-01")

	var ece *ExpenseCreationError
	assert.ErrorAs(t, err, &ece)
}

func TestCreateExpense_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, `{"error":"Invalid API request: you are not logged in"}`)

	err := client.CreateExpense(context.Background(), "Cafe", "5.00", "2024-03-01")

	var ece *ExpenseCreationError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, http.StatusUnauthorized, ece.StatusCode)
}

func TestCreateExpense_InvalidInput(t *testing.T) {
	client, bodies := newTestClient(t, http.StatusOK, `{}`)

	assert.Error(t, client.CreateExpense(context.Background(), "Cafe", "five", "2024-03-01"))
	assert.Error(t, client.CreateExpense(context.Background(), "Cafe", "5.00", "03/01/2024"))
	assert.Empty(t, bodies())
}

func TestHasErrors(t *testing.T) {
	assert.False(t, hasErrors(nil))
	assert.False(t, hasErrors([]byte(`null`)))
	assert.False(t, hasErrors([]byte(`{}`)))
	assert.False(t, hasErrors([]byte(`[]`)))
	assert.False(t, hasErrors([]byte(`{"base":[]}`)))
	assert.True(t, hasErrors([]byte(`{"base":["nope"]}`)))
	assert.True(t, hasErrors([]byte(`["nope"]`)))
}
