package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError reports a command-level failure and exits. Aborting an
// interactive prompt is not treated as a failure.
func HandleError(err error) {
	if IsAbort(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))
	os.Exit(1)
}

func IsAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
