// Package cliutil holds small helpers shared by the command line
// tools.
package cliutil

import "os"

// IsTTY reports whether f is attached to a terminal, used to decide
// whether reading from stdin makes sense.
func IsTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
