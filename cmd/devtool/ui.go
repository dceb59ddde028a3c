package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// numbers formats counts and money with thousands separators
var numbers = message.NewPrinter(language.English)

// useColor is false when NO_COLOR is set or stdout is piped
var useColor = os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())

func printLine(w io.Writer, color, symbol, format string, a ...interface{}) {
	line := symbol + " " + fmt.Sprintf(format, a...)
	if useColor {
		line = color + line + colorReset
	}
	fmt.Fprintln(w, line)
}

func PrintInfo(format string, a ...interface{}) {
	printLine(os.Stdout, colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printLine(os.Stdout, colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printLine(os.Stdout, colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printLine(os.Stderr, colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	fmt.Println()
	printLine(os.Stdout, colorYellow, "===", "%s ===", title)
}

// newTable returns a tab-aligned writer on stdout; callers must Flush
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
