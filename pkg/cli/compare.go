package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yamldiff/yamldiff/pkg/console"
	"github.com/yamldiff/yamldiff/pkg/diff"
)

// CompareOptions controls a single comparison run.
type CompareOptions struct {
	SkipHeader bool
	Context    int
	Output     string // "text", "json" or "yaml"
	Verbose    bool
}

// CompareFiles diffs two YAML files and writes the result to stdout in the
// requested format. It reports whether any differences were found.
func CompareFiles(leftPath, rightPath string, opts CompareOptions) (bool, error) {
	leftData, err := os.ReadFile(leftPath)
	if err != nil {
		return false, fmt.Errorf("reading left file: %w", err)
	}
	rightData, err := os.ReadFile(rightPath)
	if err != nil {
		return false, fmt.Errorf("reading right file: %w", err)
	}

	docsL, err := diff.Load(leftData, leftPath)
	if err != nil {
		return false, err
	}
	docsR, err := diff.Load(rightData, rightPath)
	if err != nil {
		return false, err
	}
	diffs, err := diff.Streams(docsL, docsR, opts.SkipHeader)
	if err != nil {
		return false, err
	}

	switch opts.Output {
	case "json":
		return len(diffs) > 0, WriteJSON(os.Stdout, NewReport(leftPath, rightPath, diffs))
	case "yaml":
		return len(diffs) > 0, WriteYAML(os.Stdout, NewReport(leftPath, rightPath, diffs))
	default:
		RenderDiffs(os.Stdout, diffs, RenderOptions{
			LeftPath:    leftPath,
			RightPath:   rightPath,
			LeftSource:  leftData,
			RightSource: rightData,
			Context:     opts.Context,
		})
		return len(diffs) > 0, nil
	}
}

// FormatCompareError renders engine failures for the terminal. Parse
// errors become positioned diagnostics with surrounding source lines when
// the offending side is a readable file.
func FormatCompareError(err error) string {
	var parseErr *diff.ParseError
	if errors.As(err, &parseErr) {
		return console.FormatDiagnostic(console.Diagnostic{
			Position: console.SourcePosition{
				File:   parseErr.Side,
				Line:   parseErr.Line,
				Column: parseErr.Column,
			},
			Severity: "error",
			Message:  parseErr.Problem,
			Context:  sourceContext(parseErr.Side, parseErr.Line),
		})
	}
	return console.FormatErrorMessage(err.Error())
}

// sourceContext reads the line before, at and after the given 1-based
// line. It returns nil when the path is not a readable file.
func sourceContext(path string, line int) []string {
	if line < 1 {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	// Exactly one line on each side, padded at the file boundaries so the
	// window stays centered on the diagnostic line.
	context := make([]string, 0, 3)
	for idx := line - 2; idx <= line; idx++ {
		if idx >= 0 && idx < len(lines) {
			context = append(context, lines[idx])
		} else {
			context = append(context, "")
		}
	}
	return context
}
