// Completion: 100% - Diagnostics complete, clear and helpful messages
package main

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

// DiagLevel indicates the severity of a diagnostic
type DiagLevel int

const (
	LevelWarning DiagLevel = iota
	LevelError
)

func (l DiagLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// useColor decides once whether stderr diagnostics get ANSI colors:
// only when stderr is a terminal and NO_COLOR is unset.
var useColor = stderrIsTerminal() && env.Str("NO_COLOR") == ""

// reportf writes a leveled diagnostic line to stderr
func reportf(level DiagLevel, format string, args ...interface{}) {
	if useColor {
		color := "\033[1;33m" // bold yellow
		if level == LevelError {
			color = "\033[1;31m" // bold red
		}
		fmt.Fprintf(os.Stderr, "%s%s:\033[0m ", color, level)
	} else {
		fmt.Fprintf(os.Stderr, "%s: ", level)
	}
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}

// exitf reports a fatal error and exits non-zero
func exitf(format string, args ...interface{}) {
	reportf(LevelError, format, args...)
	os.Exit(1)
}
