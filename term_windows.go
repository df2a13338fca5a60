// Completion: 100% - Platform-specific module complete
//go:build windows
// +build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// stderrIsTerminal reports whether stderr is attached to a console
func stderrIsTerminal() bool {
	var mode uint32
	err := windows.GetConsoleMode(windows.Handle(os.Stderr.Fd()), &mode)
	return err == nil
}
