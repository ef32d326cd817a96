package ynab

import "github.com/hance08/ynab2splitwise/internal/model"

// Wire types for https://api.ynab.com/v1. Nullable fields are pointers.

type transactionsResponse struct {
	Data struct {
		Transactions []transactionDTO `json:"transactions"`
	} `json:"data"`
}

type transactionDTO struct {
	ID              string              `json:"id"`
	Date            string              `json:"date"`
	Amount          int64               `json:"amount"`
	Memo            *string             `json:"memo"`
	PayeeID         *string             `json:"payee_id"`
	PayeeName       *string             `json:"payee_name"`
	CategoryID      *string             `json:"category_id"`
	FlagColor       *string             `json:"flag_color"`
	Deleted         bool                `json:"deleted"`
	SubTransactions []subTransactionDTO `json:"subtransactions"`
}

type subTransactionDTO struct {
	Amount     int64   `json:"amount"`
	PayeeID    *string `json:"payee_id"`
	CategoryID *string `json:"category_id"`
	Deleted    bool    `json:"deleted"`
}

type updateTransactionsRequest struct {
	Transactions []saveTransaction `json:"transactions"`
}

type saveTransaction struct {
	ID              string               `json:"id"`
	FlagColor       string               `json:"flag_color"`
	SubTransactions []saveSubTransaction `json:"subtransactions,omitempty"`
}

type saveSubTransaction struct {
	Amount     int64  `json:"amount"`
	CategoryID string `json:"category_id,omitempty"`
	PayeeID    string `json:"payee_id,omitempty"`
}

type categoriesResponse struct {
	Data struct {
		CategoryGroups []categoryGroupDTO `json:"category_groups"`
	} `json:"data"`
}

type categoryGroupDTO struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Hidden     bool          `json:"hidden"`
	Deleted    bool          `json:"deleted"`
	Categories []categoryDTO `json:"categories"`
}

type categoryDTO struct {
	ID              string `json:"id"`
	CategoryGroupID string `json:"category_group_id"`
	Name            string `json:"name"`
	Hidden          bool   `json:"hidden"`
	Deleted         bool   `json:"deleted"`
}

type createCategoryRequest struct {
	Category newCategory `json:"category"`
}

type newCategory struct {
	Name            string `json:"name"`
	CategoryGroupID string `json:"category_group_id"`
}

type categoryResponse struct {
	Data struct {
		Category categoryDTO `json:"category"`
	} `json:"data"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (d transactionDTO) toModel() model.Transaction {
	tx := model.Transaction{
		ID:         d.ID,
		Date:       d.Date,
		PayeeName:  deref(d.PayeeName),
		Memo:       deref(d.Memo),
		Amount:     d.Amount,
		FlagColor:  deref(d.FlagColor),
		CategoryID: deref(d.CategoryID),
		PayeeID:    deref(d.PayeeID),
		Deleted:    d.Deleted,
	}
	for _, sub := range d.SubTransactions {
		if sub.Deleted {
			continue
		}
		tx.SubTransactions = append(tx.SubTransactions, model.SubTransaction{
			Amount:     sub.Amount,
			CategoryID: deref(sub.CategoryID),
			PayeeID:    deref(sub.PayeeID),
		})
	}
	return tx
}

func (d categoryGroupDTO) toModel() model.CategoryGroup {
	group := model.CategoryGroup{
		ID:      d.ID,
		Name:    d.Name,
		Hidden:  d.Hidden,
		Deleted: d.Deleted,
	}
	for _, c := range d.Categories {
		group.Categories = append(group.Categories, c.toModel())
	}
	return group
}

func (d categoryDTO) toModel() model.Category {
	return model.Category{
		ID:      d.ID,
		Name:    d.Name,
		GroupID: d.CategoryGroupID,
		Hidden:  d.Hidden,
		Deleted: d.Deleted,
	}
}
