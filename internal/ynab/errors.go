package ynab

import (
	"errors"
	"fmt"

	"github.com/hance08/ynab2splitwise/internal/remote"
)

// ErrCategoryResolution means no visible category group exists to hold a
// newly created Splitwise category.
var ErrCategoryResolution = errors.New("no visible category group to create the Splitwise category in")

// SyncWriteError is returned when the budget service does not accept a
// batch flag/split update.
type SyncWriteError struct {
	StatusCode int
	Body       string
}

func (e *SyncWriteError) Error() string {
	return fmt.Sprintf("failed to mark transactions as synced: status %d: %s", e.StatusCode, e.Body)
}

func (e *SyncWriteError) Is(target error) bool {
	return target == remote.ErrRejected
}
