package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yamldiff/yamldiff/pkg/diff"
)

func sampleDiffs() []diff.Diff {
	return []diff.Diff{
		{
			Left:     "1",
			Right:    "2",
			LeftPos:  &diff.Position{Line: 1, Column: 4},
			RightPos: &diff.Position{Line: 3, Column: 7},
		},
		{
			Left:    "b",
			Right:   "<missing key>",
			LeftPos: &diff.Position{Line: 2, Column: 1},
		},
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport("a.yaml", "b.yaml", sampleDiffs())
	if report.Left != "a.yaml" || report.Right != "b.yaml" {
		t.Errorf("unexpected report sides %q/%q", report.Left, report.Right)
	}
	if len(report.Differences) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report.Differences))
	}
	first := report.Differences[0]
	if first.LeftPosition == nil || first.LeftPosition.Line != 1 || first.LeftPosition.Column != 4 {
		t.Errorf("unexpected left position %+v", first.LeftPosition)
	}
	if second := report.Differences[1]; second.RightPosition != nil {
		t.Errorf("expected no right position for missing key, got %+v", second.RightPosition)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewReport("a.yaml", "b.yaml", sampleDiffs())); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Differences) != 2 {
		t.Errorf("expected 2 entries after round trip, got %d", len(decoded.Differences))
	}
	if !strings.Contains(buf.String(), "leftPosition") {
		t.Errorf("expected camelCase position fields, got:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, NewReport("a.yaml", "b.yaml", sampleDiffs())); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Differences) != 2 {
		t.Errorf("expected 2 entries after round trip, got %d", len(decoded.Differences))
	}
	if decoded.Differences[1].Right != "<missing key>" {
		t.Errorf("expected placeholder to survive encoding, got %q", decoded.Differences[1].Right)
	}
}
