// Package diagnostic prints the user-facing parse diagnostics spec.md §6
// mandates, colorized the way the original implementation's `colored` crate
// did: hard errors in red, recoverable warnings (like a cyclic import) in
// yellow.
package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
)

// Errorf prints a hard parse error to w in red.
func Errorf(w io.Writer, format string, args ...interface{}) {
	_, _ = errorColor.Fprintln(w, fmt.Sprintf(format, args...))
}

// Warnf prints a recoverable diagnostic (cyclic import, missing file) to w
// in yellow.
func Warnf(w io.Writer, format string, args ...interface{}) {
	_, _ = warnColor.Fprintln(w, fmt.Sprintf(format, args...))
}
