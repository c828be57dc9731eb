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

// output receives every devtool message
var output io.Writer = os.Stdout

// colorEnabled follows the NO_COLOR convention
var colorEnabled = os.Getenv("NO_COLOR") == ""

func emit(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if symbol != "" {
		msg = symbol + " " + msg
	}
	if colorEnabled {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(output, msg)
}

func PrintInfo(format string, a ...interface{})    { emit(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { emit(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { emit(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { emit(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(output)
	emit(colorYellow, "", "=== %s ===", title)
}
