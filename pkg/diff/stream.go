package diff

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Document is one top-level value of a YAML stream together with its
// starting position. Body is nil for an empty document.
type Document struct {
	Body ast.Node
	Pos  *Position
}

// ParseError reports malformed input on one side of a comparison. Line
// and Column are 1-based; both are zero when the parser diagnostic
// carried no location.
type ParseError struct {
	Side    string
	Line    int
	Column  int
	Problem string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error parsing YAML stream %q: %d:%d %s", e.Side, e.Line, e.Column, e.Problem)
	}
	return fmt.Sprintf("error parsing YAML stream %q: %s", e.Side, e.Problem)
}

// HeaderError reports the sides that cannot satisfy a header-skip request
// because they hold fewer than two documents. Both sides are validated
// before the error is built, so every deficient side is named.
type HeaderError struct {
	Sides []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("cannot skip header: no header YAML document found in %s", strings.Join(e.Sides, ", "))
}

// Load parses a whole YAML stream into its ordered documents. side names
// the input in parse failures, typically a file path.
func Load(src []byte, side string) ([]Document, error) {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		line, column, problem := extractParseError(err)
		return nil, &ParseError{Side: side, Line: line, Column: column, Problem: problem}
	}
	docs := make([]Document, 0, len(file.Docs))
	for _, doc := range file.Docs {
		docs = append(docs, Document{Body: doc.Body, Pos: documentPosition(doc)})
	}
	return docs, nil
}

func documentPosition(doc *ast.DocumentNode) *Position {
	if pos := nodePosition(doc.Body); pos != nil {
		return pos
	}
	// Empty document: fall back to the `---` marker.
	if doc.Start != nil {
		return fromToken(doc.Start.Position)
	}
	return nil
}

// extractParseError recovers the 1-based location from a parser
// diagnostic. goccy/go-yaml formats syntax errors as "[line:col] problem"
// followed by annotated source lines; anything else falls back to the
// first line of the error text with no location.
func extractParseError(err error) (line, column int, problem string) {
	msg := err.Error()
	if strings.HasPrefix(msg, "[") {
		if end := strings.Index(msg, "]"); end > 0 {
			var l, c int
			if _, scanErr := fmt.Sscanf(msg[:end+1], "[%d:%d]", &l, &c); scanErr == nil {
				problem = strings.TrimSpace(msg[end+1:])
				if cut := strings.IndexByte(problem, '\n'); cut >= 0 {
					problem = strings.TrimSpace(problem[:cut])
				}
				return l, c, problem
			}
		}
	}
	if cut := strings.IndexByte(msg, '\n'); cut >= 0 {
		msg = msg[:cut]
	}
	return 0, 0, msg
}

// Streams compares two ordered document streams, aligning documents by
// index. With skipHeader set, both sides must hold at least two documents
// and the first document of each is dropped before comparing.
func Streams(left, right []Document, skipHeader bool) ([]Diff, error) {
	if skipHeader {
		var deficient []string
		if len(left) < 2 {
			deficient = append(deficient, "left")
		}
		if len(right) < 2 {
			deficient = append(deficient, "right")
		}
		if len(deficient) > 0 {
			return nil, &HeaderError{Sides: deficient}
		}
		left, right = left[1:], right[1:]
	}

	var diffs []Diff
	for i := 0; i < len(left) || i < len(right); i++ {
		switch {
		case i >= len(left):
			diffs = append(diffs, Diff{
				Left:     "<no document>",
				Right:    fmt.Sprintf("<YAML document #%d>", i+1),
				RightPos: right[i].Pos,
			})
		case i >= len(right):
			diffs = append(diffs, Diff{
				Left:    fmt.Sprintf("<YAML document #%d>", i+1),
				Right:   "<no document>",
				LeftPos: left[i].Pos,
			})
		default:
			child, err := Documents(left[i].Body, right[i].Body)
			if err != nil {
				return nil, err
			}
			diffs = append(diffs, child...)
		}
	}
	return diffs, nil
}

// Compare parses and diffs two raw YAML streams. It fails fast on
// malformed input or an unsatisfiable header skip; it never returns a
// partial result. The returned slice is empty iff the two inputs are
// semantically identical.
func Compare(left, right []byte, skipHeader bool) ([]Diff, error) {
	docsL, err := Load(left, "left")
	if err != nil {
		return nil, err
	}
	docsR, err := Load(right, "right")
	if err != nil {
		return nil, err
	}
	return Streams(docsL, docsR, skipHeader)
}
