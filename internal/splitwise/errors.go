package splitwise

import (
	"fmt"

	"github.com/hance08/ynab2splitwise/internal/remote"
)

// ExpenseCreationError is returned when Splitwise answers with a non-success
// status or with a populated errors payload.
type ExpenseCreationError struct {
	StatusCode int
	Body       string
}

func (e *ExpenseCreationError) Error() string {
	return fmt.Sprintf("failed to create expense: status %d: %s", e.StatusCode, e.Body)
}

func (e *ExpenseCreationError) Is(target error) bool {
	return target == remote.ErrRejected
}
