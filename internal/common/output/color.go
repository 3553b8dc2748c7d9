package output

import (
	"strings"

	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	// Plain leaves text untouched
	Plain = color.New(color.Reset)
)

// WarningPrefix starts every report line describing a failure
const WarningPrefix = "Warning!"

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// LineColor returns the color for a report line: warnings in yellow,
// results in green, anything else plain.
func LineColor(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, WarningPrefix):
		return Warning
	case strings.HasPrefix(line, "project: "):
		return Success
	default:
		return Plain
	}
}

// FormatLine colors a report line for console output
func FormatLine(line string) string {
	return LineColor(line).Sprint(line)
}
