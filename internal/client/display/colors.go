package display

import (
	"os"

	"golang.org/x/term"
)

// Terminal color codes, emptied by Disable
var (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Disable turns off color output
func Disable() {
	Reset, Red, Green, Yellow = "", "", "", ""
	Blue, Magenta, Cyan, White = "", "", "", ""
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Prompt returns a colored prompt string
func Prompt(text string) string {
	return Yellow + text + Yellow + " > " + Reset
}
