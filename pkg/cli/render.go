package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/yamldiff/yamldiff/pkg/console"
	"github.com/yamldiff/yamldiff/pkg/constants"
	"github.com/yamldiff/yamldiff/pkg/diff"
)

// RenderOptions controls terminal rendering of a difference collection.
type RenderOptions struct {
	LeftPath    string
	RightPath   string
	LeftSource  []byte // original sources, needed when Context > 0
	RightSource []byte
	Context     int
	ColumnWidth int // 0 derives the width from the terminal
}

// RenderDiffs writes the two-column difference report: a header naming
// both inputs, one row per difference with each side's position and
// value, optional source context under each row, and a summary line.
func RenderDiffs(w io.Writer, diffs []diff.Diff, opts RenderOptions) {
	if len(diffs) == 0 {
		fmt.Fprintln(w, "The given files are identical.")
		return
	}

	width := opts.ColumnWidth
	if width == 0 {
		width = columnWidth()
	}
	gap := strings.Repeat(" ", len(constants.Separator))

	header := "L:" + fitPath(opts.LeftPath, width-2) + gap + "R:" + fitPath(opts.RightPath, width-2)
	fmt.Fprintln(w, console.FormatHeaderLine(header))

	var linesL, linesR []string
	if opts.Context > 0 {
		linesL = strings.Split(string(opts.LeftSource), "\n")
		linesR = strings.Split(string(opts.RightSource), "\n")
	}

	for _, d := range diffs {
		row := sideString("L", d.Left, d.LeftPos, width) +
			constants.Separator +
			sideString("R", d.Right, d.RightPos, width)
		if opts.Context == 0 {
			fmt.Fprintln(w, row)
			continue
		}

		fmt.Fprintln(w, console.FormatDiffLine(row))
		for offset := -opts.Context; offset <= opts.Context; offset++ {
			line := contextRow(linesL, d.LeftPos, offset, width) + gap +
				contextRow(linesR, d.RightPos, offset, width)
			if offset == 0 {
				fmt.Fprintln(w, console.FormatFocusLine(line))
			} else {
				fmt.Fprintln(w, console.FormatContextLine(line))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, console.FormatHeaderLine(fmt.Sprintf("%d difference(s) found.", len(diffs))))
}

// sideString lays out one side of a difference row: the side prefix, an
// 8-cell position field (blank when no position is known) and the value,
// truncated or padded so every row aligns.
func sideString(prefix, text string, pos *diff.Position, width int) string {
	position := strings.Repeat(" ", 8)
	if pos != nil {
		position = fmt.Sprintf("%4d:%-3d", pos.Line, pos.Column)
	}
	text = strings.ReplaceAll(text, "\n", "\\n")
	return prefix + position + " " + shortenAndPad(text, width-10, "...")
}

// shortenAndPad fits s into exactly width display cells.
func shortenAndPad(s string, width int, placeholder string) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, placeholder)
	}
	return runewidth.FillRight(s, width)
}

// fitPath fits a file path into width cells, keeping the tail: the file
// name matters more than the leading directories.
func fitPath(path string, width int) string {
	if len(path) <= width {
		return path + strings.Repeat(" ", width-len(path))
	}
	return "..." + path[len(path)-width+3:]
}

// contextRow returns the source line at the given offset from a
// position, fitted to the column width, or blanks when out of range.
func contextRow(lines []string, pos *diff.Position, offset, width int) string {
	if pos != nil {
		idx := pos.Line - 1 + offset
		if idx >= 0 && idx < len(lines) {
			return shortenAndPad(lines[idx], width, "")
		}
	}
	return strings.Repeat(" ", width)
}

// columnWidth derives the per-side column width from the terminal,
// falling back to a fixed width when stdout is not a terminal.
func columnWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return constants.DefaultColumnWidth
	}
	width := w/2 - len(constants.Separator)/2 - 1
	if width < constants.MinColumnWidth {
		return constants.MinColumnWidth
	}
	return width
}
