package diff

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// Kind classifies a parsed YAML node for comparison dispatch.
type Kind int

const (
	// KindAbsent is the YAML null/no-value marker.
	KindAbsent Kind = iota
	// KindMapping is a node with unique keys, each holding a value.
	KindMapping
	// KindSequence is an ordered, integer-indexed node.
	KindSequence
	// KindScalar is any other leaf value. A string is a scalar, never a
	// sequence of characters.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "null"
	case KindMapping:
		return "map"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Classify maps any parser-produced node to one of the four comparison
// kinds. It is total: every node falls into exactly one kind.
func Classify(node ast.Node) Kind {
	switch unwrap(node).(type) {
	case nil:
		return KindAbsent
	case *ast.NullNode:
		return KindAbsent
	case *ast.MappingNode, *ast.MappingValueNode:
		return KindMapping
	case *ast.SequenceNode:
		return KindSequence
	default:
		return KindScalar
	}
}

// unwrap strips anchor and tag wrappers so classification and value access
// see the underlying node.
func unwrap(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.AnchorNode:
			node = n.Value
		case *ast.TagNode:
			node = n.Value
		default:
			return node
		}
	}
}

// mappingEntries normalizes the two AST shapes a mapping can take: a full
// MappingNode, or a bare MappingValueNode when the mapping has one pair.
func mappingEntries(node ast.Node) []*ast.MappingValueNode {
	switch n := unwrap(node).(type) {
	case *ast.MappingNode:
		return n.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}
	default:
		return nil
	}
}

func sequenceItems(node ast.Node) []ast.Node {
	if n, ok := unwrap(node).(*ast.SequenceNode); ok {
		return n.Values
	}
	return nil
}

// scalarValue returns the parsed value of a scalar node for equality
// comparison, so that `1` and `"1"` compare unequal while reformatted
// equal values compare equal. All returned types are comparable.
func scalarValue(node ast.Node) any {
	switch n := unwrap(node).(type) {
	case *ast.StringNode:
		return n.Value
	case *ast.IntegerNode:
		return n.Value
	case *ast.FloatNode:
		return n.Value
	case *ast.BoolNode:
		return n.Value
	case *ast.LiteralNode:
		if n.Value != nil {
			return n.Value.Value
		}
		return ""
	case *ast.AliasNode:
		// The AST does not resolve aliases; compare by alias name.
		return nodeString(n.Value)
	default:
		if tok := node.GetToken(); tok != nil {
			return tok.Value
		}
		return ""
	}
}

// nodeString renders a node for display in a difference record.
func nodeString(node ast.Node) string {
	switch n := unwrap(node).(type) {
	case nil:
		return "null"
	case *ast.StringNode:
		return n.Value
	case *ast.IntegerNode:
		return fmt.Sprintf("%v", n.Value)
	case *ast.FloatNode:
		return fmt.Sprintf("%v", n.Value)
	case *ast.BoolNode:
		return fmt.Sprintf("%t", n.Value)
	case *ast.NullNode:
		return "null"
	case *ast.LiteralNode:
		if n.Value != nil {
			return n.Value.Value
		}
		return ""
	default:
		// Containers and anything else render in flow form on one line.
		return strings.Join(strings.Fields(n.String()), " ")
	}
}
