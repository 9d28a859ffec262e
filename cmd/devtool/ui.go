package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// output receives every status line; tests swap it for a buffer
var output io.Writer = os.Stdout

func printStatus(color, symbol, format string, a ...interface{}) {
	fmt.Fprintf(output, color+symbol+" "+format+colorReset+"\n", a...)
}

func PrintInfo(format string, a ...interface{}) {
	printStatus(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printStatus(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printStatus(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printStatus(colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	fmt.Fprintf(output, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}
