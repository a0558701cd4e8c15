package diff

import (
	"testing"

	"github.com/goccy/go-yaml/ast"
)

// mustBody parses src as a single-document stream and returns its body.
func mustBody(t *testing.T, src string) ast.Node {
	t.Helper()
	docs, err := Load([]byte(src), "test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(docs) == 0 {
		return nil
	}
	return docs[0].Body
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Kind
	}{
		{name: "explicit null", yaml: `null`, expected: KindAbsent},
		{name: "tilde null", yaml: `~`, expected: KindAbsent},
		{name: "block mapping", yaml: "a: 1\nb: 2", expected: KindMapping},
		{name: "single pair mapping", yaml: `a: 1`, expected: KindMapping},
		{name: "flow mapping", yaml: `{a: 1, b: 2}`, expected: KindMapping},
		{name: "block sequence", yaml: "- 1\n- 2", expected: KindSequence},
		{name: "flow sequence", yaml: `[1, 2]`, expected: KindSequence},
		{name: "string is a scalar not a sequence", yaml: `hello`, expected: KindScalar},
		{name: "integer", yaml: `42`, expected: KindScalar},
		{name: "float", yaml: `3.14`, expected: KindScalar},
		{name: "boolean", yaml: `true`, expected: KindScalar},
		{name: "anchored sequence", yaml: `&items [1, 2]`, expected: KindSequence},
		{name: "anchored scalar", yaml: `&name hello`, expected: KindScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustBody(t, tt.yaml)
			if kind := Classify(node); kind != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.yaml, kind, tt.expected)
			}
		})
	}
}

func TestClassifyNilNode(t *testing.T) {
	if kind := Classify(nil); kind != KindAbsent {
		t.Errorf("Classify(nil) = %s, want %s", kind, KindAbsent)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAbsent, "null"},
		{KindMapping, "map"},
		{KindSequence, "sequence"},
		{KindScalar, "scalar"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected string
	}{
		{name: "string", yaml: `hello`, expected: "hello"},
		{name: "quoted string", yaml: `"hello world"`, expected: "hello world"},
		{name: "integer", yaml: `42`, expected: "42"},
		{name: "float", yaml: `3.5`, expected: "3.5"},
		{name: "boolean", yaml: `true`, expected: "true"},
		{name: "null", yaml: `null`, expected: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustBody(t, tt.yaml)
			if got := nodeString(node); got != tt.expected {
				t.Errorf("nodeString(%q) = %q, want %q", tt.yaml, got, tt.expected)
			}
		})
	}
}

func TestMappingEntriesNormalization(t *testing.T) {
	// A single key/value pair parses to a bare MappingValueNode; multiple
	// pairs parse to a MappingNode. Both must yield entries.
	single := mustBody(t, `a: 1`)
	if entries := mappingEntries(single); len(entries) != 1 {
		t.Errorf("expected 1 entry for single-pair mapping, got %d", len(entries))
	}

	multi := mustBody(t, "a: 1\nb: 2\nc: 3")
	if entries := mappingEntries(multi); len(entries) != 3 {
		t.Errorf("expected 3 entries for block mapping, got %d", len(entries))
	}

	if entries := mappingEntries(mustBody(t, `[1, 2]`)); entries != nil {
		t.Errorf("expected no entries for a sequence, got %d", len(entries))
	}
}

func TestScalarValueTyping(t *testing.T) {
	// Parsed values carry their type: the string "1" and the integer 1
	// must not compare equal.
	str := mustBody(t, `"1"`)
	num := mustBody(t, `1`)
	if scalarValue(str) == scalarValue(num) {
		t.Error("string \"1\" and integer 1 should compare unequal")
	}

	// The same value reformatted compares equal.
	plain := mustBody(t, `hello`)
	quoted := mustBody(t, `"hello"`)
	if scalarValue(plain) != scalarValue(quoted) {
		t.Error("plain and quoted forms of the same string should compare equal")
	}
}
