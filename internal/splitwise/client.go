package splitwise

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hance08/ynab2splitwise/internal/constants"
	"github.com/hance08/ynab2splitwise/internal/remote"
)

const serviceName = "splitwise"

type Options struct {
	BaseURL string
	APIKey  string
	GroupID int64
	Timeout time.Duration
}

// Client creates expenses in a single Splitwise group.
type Client struct {
	api     *remote.Client
	groupID int64
}

func NewClient(opts Options) *Client {
	return &Client{
		api:     remote.NewClient(serviceName, opts.BaseURL, opts.APIKey, opts.Timeout),
		groupID: opts.GroupID,
	}
}

type createExpenseRequest struct {
	Cost         string `json:"cost"`
	Description  string `json:"description"`
	GroupID      int64  `json:"group_id"`
	Date         string `json:"date"`
	SplitEqually bool   `json:"split_equally"`
}

type createExpenseResponse struct {
	Errors json.RawMessage `json:"errors"`
}

// CreateExpense submits an expense split equally across the group. cost is
// a decimal string; its sign is dropped. date must be YYYY-MM-DD.
func (c *Client) CreateExpense(ctx context.Context, description, cost, date string) error {
	amount, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost %q: %w", cost, err)
	}
	day, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	req := createExpenseRequest{
		Cost:         amount.Abs().StringFixed(2),
		Description:  description,
		GroupID:      c.groupID,
		Date:         day.Format(constants.DateFormat),
		SplitEqually: true,
	}

	resp, err := c.api.Do(ctx, "create expense", http.MethodPost, "/create_expense", nil, req)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return newExpenseCreationError(resp)
	}

	var body createExpenseResponse
	if err := c.api.Decode("create expense", resp, &body); err != nil {
		return err
	}
	if hasErrors(body.Errors) {
		return newExpenseCreationError(resp)
	}
	return nil
}

// hasErrors treats null, {} and [] as "no errors".
func hasErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch string(trimmed) {
	case "null", "{}", "[]", `""`:
		return false
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &asMap); err == nil {
		for _, v := range asMap {
			if hasErrors(v) {
				return true
			}
		}
		return false
	}
	return true
}

func newExpenseCreationError(resp *remote.Response) *ExpenseCreationError {
	return &ExpenseCreationError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(resp.Body)),
	}
}
