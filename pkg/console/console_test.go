package console

import (
	"strings"
	"testing"
)

func TestFormatDiagnostic(t *testing.T) {
	tests := []struct {
		name     string
		d        Diagnostic
		expected []string // Substrings that should be present in output
	}{
		{
			name: "basic error with position",
			d: Diagnostic{
				Position: SourcePosition{File: "left.yaml", Line: 5, Column: 10},
				Severity: "error",
				Message:  "unexpected key name",
			},
			expected: []string{
				"left.yaml:5:10:",
				"error:",
				"unexpected key name",
			},
		},
		{
			name: "warning severity",
			d: Diagnostic{
				Position: SourcePosition{File: "right.yaml", Line: 2, Column: 1},
				Severity: "warning",
				Message:  "duplicate key",
			},
			expected: []string{
				"right.yaml:2:1:",
				"warning:",
				"duplicate key",
			},
		},
		{
			name: "error with context lines",
			d: Diagnostic{
				Position: SourcePosition{File: "left.yaml", Line: 3, Column: 5},
				Severity: "error",
				Message:  "mapping value is not allowed here",
				Context: []string{
					"server:",
					"  host: localhost",
					"  port 8080:",
				},
			},
			expected: []string{
				"left.yaml:3:5:",
				"error:",
				"mapping value is not allowed here",
				"2 |",
				"3 |",
				"4 |",
				"^",
			},
		},
		{
			name: "unknown severity defaults to error",
			d: Diagnostic{
				Message: "broken stream",
			},
			expected: []string{"error:", "broken stream"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := FormatDiagnostic(tt.d)
			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, but got:\n%s", expected, output)
				}
			}
		})
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		icon   string
	}{
		{name: "error", format: FormatErrorMessage, icon: "✗"},
		{name: "warning", format: FormatWarningMessage, icon: "⚠"},
		{name: "info", format: FormatInfoMessage, icon: "ℹ"},
		{name: "success", format: FormatSuccessMessage, icon: "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.format("some message")
			if !strings.Contains(output, "some message") {
				t.Errorf("Expected output to contain message, got: %s", output)
			}
			if !strings.Contains(output, tt.icon) {
				t.Errorf("Expected output to contain %q, got: %s", tt.icon, output)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	output := RenderTable(TableConfig{
		Title:    "Comparison Summary",
		Headers:  []string{"File", "Differences"},
		Rows:     [][]string{{"config.yaml", "3"}, {"deploy.yaml", "0"}},
		TotalRow: []string{"Total", "3"},
	})

	for _, expected := range []string{"Comparison Summary", "File", "Differences", "config.yaml", "deploy.yaml", "Total"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected table to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if output := RenderTable(TableConfig{}); output != "" {
		t.Errorf("Expected empty output for empty headers, got: %s", output)
	}
}

func TestSpinnerDisabledWithoutTTY(t *testing.T) {
	s := NewSpinner("working...")
	// Start/Stop must be safe regardless of TTY status.
	s.Start()
	s.UpdateMessage("still working...")
	s.Stop()
}
