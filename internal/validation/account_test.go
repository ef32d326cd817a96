package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nameSet map[string]bool

func (n nameSet) HasAccount(name string) bool {
	return n[strings.ToLower(name)]
}

func TestValidateAccountName(t *testing.T) {
	v := NewAccountValidator(nameSet{"household": true})

	assert.NoError(t, v.ValidateAccountName("Travel"))
	assert.Error(t, v.ValidateAccountName("  "))
	assert.Error(t, v.ValidateAccountName("Household"))
	assert.Error(t, v.ValidateAccountName(strings.Repeat("x", 101)))
}

func TestRequired(t *testing.T) {
	check := Required("budget id")

	assert.NoError(t, check("abc"))
	assert.EqualError(t, check(" "), "budget id is required")
}

func TestValidateGroupID(t *testing.T) {
	assert.NoError(t, ValidateGroupID("12345"))
	assert.Error(t, ValidateGroupID("abc"))
	assert.Error(t, ValidateGroupID("0"))
	assert.Error(t, ValidateGroupID("-3"))
}

func TestValidateFlagColor(t *testing.T) {
	assert.NoError(t, ValidateFlagColor("blue"))
	assert.NoError(t, ValidateFlagColor("Green"))
	assert.Error(t, ValidateFlagColor("pink"))
}
