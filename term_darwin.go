// Completion: 100% - Platform-specific module complete
//go:build darwin || freebsd
// +build darwin freebsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// stderrIsTerminal reports whether stderr is attached to a terminal
func stderrIsTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stderr.Fd()), unix.TIOCGETA)
	return err == nil
}
