package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/ynab2splitwise/internal/constants"
)

// AccountNames reports whether an account name is already taken.
type AccountNames interface {
	HasAccount(name string) bool
}

// AccountValidator checks the fields the init wizard collects.
type AccountValidator struct {
	names AccountNames
}

func NewAccountValidator(names AccountNames) *AccountValidator {
	return &AccountValidator{names: names}
}

// ValidateAccountName checks format and uniqueness of an account name.
func (v *AccountValidator) ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}

	if v.names != nil && v.names.HasAccount(name) {
		return fmt.Errorf("account '%s' already exists", name)
	}
	return nil
}

// Required returns a validator rejecting blank input for field.
func Required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateGroupID accepts a positive integer Splitwise group id.
func ValidateGroupID(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("group id must be a number")
	}
	if id <= 0 {
		return fmt.Errorf("group id must be positive")
	}
	return nil
}

// ValidateFlagColor accepts one of the budget service's flag colors.
func ValidateFlagColor(s string) error {
	if !constants.FlagColors[strings.ToLower(strings.TrimSpace(s))] {
		return fmt.Errorf("unsupported flag color %q", s)
	}
	return nil
}
