package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yamldiff/yamldiff/pkg/diff"
)

// ReportPosition is a 1-based source location in a serialized report.
type ReportPosition struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// ReportEntry is one difference in a serialized report.
type ReportEntry struct {
	Left          string          `json:"left" yaml:"left"`
	Right         string          `json:"right" yaml:"right"`
	LeftPosition  *ReportPosition `json:"leftPosition,omitempty" yaml:"leftPosition,omitempty"`
	RightPosition *ReportPosition `json:"rightPosition,omitempty" yaml:"rightPosition,omitempty"`
}

// Report is the machine-readable form of a comparison.
type Report struct {
	Left        string        `json:"left" yaml:"left"`
	Right       string        `json:"right" yaml:"right"`
	Differences []ReportEntry `json:"differences" yaml:"differences"`
}

// NewReport converts a difference collection for serialization.
func NewReport(leftPath, rightPath string, diffs []diff.Diff) Report {
	entries := make([]ReportEntry, 0, len(diffs))
	for _, d := range diffs {
		entries = append(entries, ReportEntry{
			Left:          d.Left,
			Right:         d.Right,
			LeftPosition:  reportPosition(d.LeftPos),
			RightPosition: reportPosition(d.RightPos),
		})
	}
	return Report{Left: leftPath, Right: rightPath, Differences: entries}
}

func reportPosition(pos *diff.Position) *ReportPosition {
	if pos == nil {
		return nil
	}
	return &ReportPosition{Line: pos.Line, Column: pos.Column}
}

// WriteJSON writes an indented JSON report
func WriteJSON(w io.Writer, report Report) error {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// WriteYAML writes a YAML report
func WriteYAML(w io.Writer, report Report) error {
	encoded, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(encoded)
	return err
}
