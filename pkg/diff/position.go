package diff

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
)

// Position is a 1-based line/column location in one of the input sources.
// A nil *Position means no position is known for that side.
type Position struct {
	Line   int
	Column int
}

func (p *Position) String() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// fromToken converts a parser token position, which is already 1-based.
func fromToken(pos *token.Position) *Position {
	if pos == nil {
		return nil
	}
	return &Position{Line: pos.Line, Column: pos.Column}
}

// positionOf returns the source position of a node's own token, or nil
// when the node carries no token.
func positionOf(node ast.Node) *Position {
	if node == nil {
		return nil
	}
	tok := node.GetToken()
	if tok == nil {
		return nil
	}
	return fromToken(tok.Position)
}

// nodePosition returns the reportable position of a node. For mappings
// and sequences that is the first key or item, since the node's own token
// points at interior punctuation (the first entry's colon for block
// mappings). Scalars report their own token.
func nodePosition(node ast.Node) *Position {
	if entries := mappingEntries(node); len(entries) > 0 {
		return positionOf(entries[0].Key)
	}
	if items := sequenceItems(node); len(items) > 0 {
		return nodePosition(items[0])
	}
	return positionOf(node)
}
