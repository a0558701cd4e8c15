package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// SourcePosition locates a diagnostic in an input file
type SourcePosition struct {
	File   string
	Line   int
	Column int
}

// Diagnostic represents a structured error with position information
type Diagnostic struct {
	Position SourcePosition
	Severity string // "error", "warning", "info"
	Message  string
	Context  []string // Source lines surrounding the position
}

// Styles for the different output elements
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	diffLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD"))

	focusLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	contextLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F8F8F2"))
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatDiagnostic renders a positioned diagnostic as
// file:line:column: severity: message, followed by any context lines with
// a caret under the offending column.
func FormatDiagnostic(d Diagnostic) string {
	var output strings.Builder

	var severityStyle lipgloss.Style
	switch d.Severity {
	case "warning":
		severityStyle = warningStyle
	case "info":
		severityStyle = infoStyle
	default:
		d.Severity = "error"
		severityStyle = errorStyle
	}

	if d.Position.File != "" {
		location := fmt.Sprintf("%s:%d:%d:", d.Position.File, d.Position.Line, d.Position.Column)
		output.WriteString(applyStyle(filePathStyle, location))
		output.WriteString(" ")
	}
	output.WriteString(applyStyle(severityStyle, d.Severity+":"))
	output.WriteString(" ")
	output.WriteString(d.Message)
	output.WriteString("\n")

	if len(d.Context) > 0 && d.Position.Line > 0 {
		output.WriteString(renderDiagnosticContext(d))
	}
	return output.String()
}

// renderDiagnosticContext prints numbered source lines centered on the
// diagnostic position, with the offending line highlighted and a caret
// under the column.
func renderDiagnosticContext(d Diagnostic) string {
	var output strings.Builder

	firstLine := d.Position.Line - len(d.Context)/2
	lastLine := firstLine + len(d.Context) - 1
	numberWidth := len(fmt.Sprintf("%d", lastLine))

	for i, line := range d.Context {
		lineNum := firstLine + i
		if lineNum < 1 {
			continue
		}
		output.WriteString(applyStyle(lineNumberStyle, fmt.Sprintf("%*d", numberWidth, lineNum)))
		output.WriteString(" | ")
		if lineNum == d.Position.Line {
			output.WriteString(applyStyle(focusLineStyle, line))
		} else {
			output.WriteString(applyStyle(contextLineStyle, line))
		}
		output.WriteString("\n")

		if lineNum == d.Position.Line && d.Position.Column > 0 {
			output.WriteString(strings.Repeat(" ", numberWidth+3+d.Position.Column-1))
			output.WriteString(applyStyle(errorStyle, "^"))
			output.WriteString("\n")
		}
	}
	return output.String()
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatHeaderLine formats the bold header naming the compared inputs
func FormatHeaderLine(line string) string {
	return applyStyle(headerStyle, line)
}

// FormatDiffLine formats one rendered difference row
func FormatDiffLine(line string) string {
	return applyStyle(diffLineStyle, line)
}

// FormatContextLine formats a source context row printed under a difference
func FormatContextLine(line string) string {
	return applyStyle(contextLineStyle, line)
}

// FormatFocusLine formats the source row a difference points at
func FormatFocusLine(line string) string {
	return applyStyle(focusLineStyle, line)
}
