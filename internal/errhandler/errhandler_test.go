package errhandler

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsAbort(t *testing.T) {
	assert.True(t, IsAbort(huh.ErrUserAborted))
	assert.True(t, IsAbort(fmt.Errorf("wizard: %w", huh.ErrUserAborted)))
	assert.False(t, IsAbort(fmt.Errorf("boom")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "No accounts configured", capitalize("no accounts configured"))
}
