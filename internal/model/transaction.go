package model

type Transaction struct {
	ID              string
	Date            string // YYYY-MM-DD
	PayeeName       string
	Memo            string
	Amount          int64 // milliunits, negative = outflow
	FlagColor       string
	CategoryID      string
	PayeeID         string
	Deleted         bool
	SubTransactions []SubTransaction
}

type SubTransaction struct {
	Amount     int64
	CategoryID string
	PayeeID    string
}

// IsSplit reports whether the transaction already carries subtransactions.
func (t Transaction) IsSplit() bool {
	return len(t.SubTransactions) > 0
}

// SplitAmount halves a milliunit amount with floor division, so the
// remainder of an odd amount always lands on the remaining side:
// -5001 splits into -2501 and -2500, 5001 into 2500 and 2501.
func SplitAmount(amount int64) (split, remaining int64) {
	split = amount / 2
	if amount%2 != 0 && amount < 0 {
		split--
	}
	return split, amount - split
}
