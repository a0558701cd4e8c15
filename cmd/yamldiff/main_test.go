package main

import "testing"

func TestValidateOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{name: "text is valid", output: "text", wantErr: false},
		{name: "json is valid", output: "json", wantErr: false},
		{name: "yaml is valid", output: "yaml", wantErr: false},
		{name: "empty is rejected", output: "", wantErr: true},
		{name: "unknown format is rejected", output: "xml", wantErr: true},
		{name: "case sensitive", output: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOutput(tt.output)
			if tt.wantErr && err == nil {
				t.Errorf("validateOutput(%q) expected an error", tt.output)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateOutput(%q) unexpected error: %v", tt.output, err)
			}
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, flag := range []string{"context", "skip-header-doc", "output", "watch", "recursive"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s to be registered", flag)
		}
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected persistent flag --verbose to be registered")
	}
}
