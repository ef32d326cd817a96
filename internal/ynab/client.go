package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hance08/ynab2splitwise/internal/constants"
	"github.com/hance08/ynab2splitwise/internal/model"
	"github.com/hance08/ynab2splitwise/internal/remote"
)

const serviceName = "ynab"

type Options struct {
	BaseURL  string
	APIKey   string
	BudgetID string
	Flags    model.FlagScheme
	Timeout  time.Duration
}

// Client talks to one budget. Apart from the Splitwise category id, which is
// resolved once and then reused, it holds no state between calls.
type Client struct {
	api      *remote.Client
	budgetID string
	flags    model.FlagScheme

	splitwiseCategoryID *string
}

func NewClient(opts Options) *Client {
	return &Client{
		api:      remote.NewClient(serviceName, opts.BaseURL, opts.APIKey, opts.Timeout),
		budgetID: opts.BudgetID,
		flags:    opts.Flags,
	}
}

func (c *Client) transactionsPath() string {
	return "/budgets/" + url.PathEscape(c.budgetID) + "/transactions"
}

func (c *Client) categoriesPath() string {
	return "/budgets/" + url.PathEscape(c.budgetID) + "/categories"
}

// FetchQueued returns the live transactions flagged with the queued color,
// in the order the service returned them. A nil since fetches everything.
func (c *Client) FetchQueued(ctx context.Context, since *time.Time) ([]model.Transaction, error) {
	var query url.Values
	if since != nil {
		query = url.Values{"since_date": {since.Format(constants.DateFormat)}}
	}

	all, err := c.listTransactions(ctx, query)
	if err != nil {
		return nil, err
	}

	queued := make([]model.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Deleted || c.flags.State(tx) != model.FlagQueued {
			continue
		}
		queued = append(queued, tx)
	}
	return queued, nil
}

// FetchAll returns every transaction in the budget.
func (c *Client) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	return c.listTransactions(ctx, nil)
}

func (c *Client) listTransactions(ctx context.Context, query url.Values) ([]model.Transaction, error) {
	var resp transactionsResponse
	if err := c.api.DoJSON(ctx, "list transactions", http.MethodGet, c.transactionsPath(), query, nil, &resp); err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(resp.Data.Transactions))
	for _, dto := range resp.Data.Transactions {
		txs = append(txs, dto.toModel())
	}
	return txs, nil
}

// ResolveSplitwiseCategory finds the category named "Splitwise", creating
// it under the first visible group when it does not exist yet.
func (c *Client) ResolveSplitwiseCategory(ctx context.Context) (string, error) {
	if c.splitwiseCategoryID != nil {
		return *c.splitwiseCategoryID, nil
	}

	groups, err := c.listCategoryGroups(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}

	if id, ok := findCategory(groups, constants.SplitwiseCategoryName); ok {
		c.splitwiseCategoryID = &id
		return id, nil
	}

	group, ok := firstVisibleGroup(groups)
	if !ok {
		return "", ErrCategoryResolution
	}

	id, err := c.createCategory(ctx, group.ID, constants.SplitwiseCategoryName)
	if err != nil {
		return "", fmt.Errorf("failed to create %s category in group %q: %w", constants.SplitwiseCategoryName, group.Name, err)
	}

	c.splitwiseCategoryID = &id
	return id, nil
}

func (c *Client) listCategoryGroups(ctx context.Context) ([]model.CategoryGroup, error) {
	var resp categoriesResponse
	if err := c.api.DoJSON(ctx, "list categories", http.MethodGet, c.categoriesPath(), nil, nil, &resp); err != nil {
		return nil, err
	}

	groups := make([]model.CategoryGroup, 0, len(resp.Data.CategoryGroups))
	for _, dto := range resp.Data.CategoryGroups {
		groups = append(groups, dto.toModel())
	}
	return groups, nil
}

func (c *Client) createCategory(ctx context.Context, groupID, name string) (string, error) {
	req := createCategoryRequest{Category: newCategory{Name: name, CategoryGroupID: groupID}}

	var resp categoryResponse
	if err := c.api.DoJSON(ctx, "create category", http.MethodPost, c.categoriesPath(), nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Data.Category.ID, nil
}

func findCategory(groups []model.CategoryGroup, name string) (string, bool) {
	for _, g := range groups {
		if g.Deleted {
			continue
		}
		for _, cat := range g.Categories {
			if !cat.Deleted && cat.Name == name {
				return cat.ID, true
			}
		}
	}
	return "", false
}

func firstVisibleGroup(groups []model.CategoryGroup) (model.CategoryGroup, bool) {
	for _, g := range groups {
		if !g.Hidden && !g.Deleted {
			return g, true
		}
	}
	return model.CategoryGroup{}, false
}

// MarkSynced flags every transaction with the synced color in a single
// PATCH. With split set, each one also gets two subtransactions: the
// original category keeps the remaining half and the Splitwise category
// takes the floor half (see model.SplitAmount). Failures are not retried.
func (c *Client) MarkSynced(ctx context.Context, txs []model.Transaction, split bool) error {
	if len(txs) == 0 {
		return nil
	}

	var categoryID string
	if split {
		id, err := c.ResolveSplitwiseCategory(ctx)
		if err != nil {
			return err
		}
		categoryID = id
	}

	req := buildUpdateRequest(txs, c.flags.Synced, split, categoryID)

	resp, err := c.api.Do(ctx, "update transactions", http.MethodPatch, c.transactionsPath(), nil, req)
	if err != nil {
		return err
	}
	if !resp.OK() {
		rej := c.api.Rejection("update transactions", resp)
		return &SyncWriteError{StatusCode: rej.StatusCode, Body: rej.Body}
	}
	return nil
}

func buildUpdateRequest(txs []model.Transaction, syncedColor string, split bool, splitwiseCategoryID string) updateTransactionsRequest {
	req := updateTransactionsRequest{Transactions: make([]saveTransaction, 0, len(txs))}

	for _, tx := range txs {
		save := saveTransaction{ID: tx.ID, FlagColor: syncedColor}
		if split {
			splitAmount, remaining := model.SplitAmount(tx.Amount)
			save.SubTransactions = []saveSubTransaction{
				{Amount: remaining, CategoryID: tx.CategoryID, PayeeID: tx.PayeeID},
				{Amount: splitAmount, CategoryID: splitwiseCategoryID},
			}
		}
		req.Transactions = append(req.Transactions, save)
	}
	return req
}
