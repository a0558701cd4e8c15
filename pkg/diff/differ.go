// Package diff computes structural differences between parsed YAML
// documents. Two documents are walked in lock-step and every point where
// their data trees diverge is reported as a Diff carrying both sides'
// values and source positions. Comparison is semantic: key order,
// formatting and whitespace do not matter. List comparison is strictly
// positional; there is no move detection.
package diff

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
)

// Diff is one reported divergence between corresponding nodes on the left
// and right sides. One side may be a placeholder such as `<missing key>`
// when no corresponding node exists. Records are immutable once created.
type Diff struct {
	Left     string
	Right    string
	LeftPos  *Position
	RightPos *Position
}

// Documents compares two parsed document bodies and returns every
// divergence between them in deterministic order. Inputs are never
// mutated. The result is empty iff the documents are semantically equal.
func Documents(left, right ast.Node) ([]Diff, error) {
	kindL, kindR := Classify(left), Classify(right)
	if kindL != kindR {
		d := Diff{
			Left:  fmt.Sprintf("<top-level node of type %s>", kindL),
			Right: fmt.Sprintf("<top-level node of type %s>", kindR),
		}
		if kindL != KindAbsent {
			d.LeftPos = nodePosition(left)
		}
		if kindR != KindAbsent {
			d.RightPos = nodePosition(right)
		}
		return []Diff{d}, nil
	}
	return compareNodes(left, right, "")
}

// compareNodes handles two nodes already classified as the same kind
// family: it re-derives the kinds, reports a single record on mismatch
// (annotated with key when set), and otherwise dispatches on kind.
func compareNodes(left, right ast.Node, key string) ([]Diff, error) {
	kindL, kindR := Classify(left), Classify(right)
	if kindL != kindR {
		leftDesc := fmt.Sprintf("<node of type %s>", kindL)
		rightDesc := fmt.Sprintf("<node of type %s>", kindR)
		if key != "" {
			leftDesc += " " + key
			rightDesc += " " + key
		}
		return []Diff{{
			Left:     leftDesc,
			Right:    rightDesc,
			LeftPos:  nodePosition(left),
			RightPos: nodePosition(right),
		}}, nil
	}

	switch kindL {
	case KindAbsent:
		return nil, nil
	case KindMapping:
		return diffMappings(left, right)
	case KindSequence:
		return diffSequences(left, right)
	case KindScalar:
		if scalarValue(left) != scalarValue(right) {
			return []Diff{{
				Left:     nodeString(left),
				Right:    nodeString(right),
				LeftPos:  positionOf(left),
				RightPos: positionOf(right),
			}}, nil
		}
		return nil, nil
	default:
		// Unreachable: Classify is total over the four kinds.
		return nil, fmt.Errorf("unrecognized node kind %d", kindL)
	}
}

// diffMappings walks left's keys in source order, then reports right-only
// keys in right's order. The two passes report right-only keys exactly
// once without double-reporting shared keys.
func diffMappings(left, right ast.Node) ([]Diff, error) {
	entriesL := mappingEntries(left)
	entriesR := mappingEntries(right)

	rightByKey := make(map[string]*ast.MappingValueNode, len(entriesR))
	for _, entry := range entriesR {
		rightByKey[nodeString(entry.Key)] = entry
	}

	var diffs []Diff
	leftKeys := make(map[string]struct{}, len(entriesL))
	for _, entryL := range entriesL {
		key := nodeString(entryL.Key)
		leftKeys[key] = struct{}{}
		entryR, ok := rightByKey[key]
		if !ok {
			diffs = append(diffs, Diff{
				Left:     key,
				Right:    "<missing key>",
				LeftPos:  positionOf(entryL.Key),
				RightPos: nodePosition(right),
			})
			continue
		}
		child, err := compareNodes(entryL.Value, entryR.Value, key)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, child...)
	}

	for _, entryR := range entriesR {
		key := nodeString(entryR.Key)
		if _, ok := leftKeys[key]; ok {
			continue
		}
		diffs = append(diffs, Diff{
			Left:     "<missing key>",
			Right:    key,
			LeftPos:  nodePosition(left),
			RightPos: positionOf(entryR.Key),
		})
	}
	return diffs, nil
}

// diffSequences aligns items strictly by index up to the longer side's
// length. Items past the shorter side's end are reported as missing,
// positioned at the shorter side's whole-sequence start.
func diffSequences(left, right ast.Node) ([]Diff, error) {
	itemsL := sequenceItems(left)
	itemsR := sequenceItems(right)

	var diffs []Diff
	for i := 0; i < len(itemsL) || i < len(itemsR); i++ {
		switch {
		case i >= len(itemsL):
			diffs = append(diffs, Diff{
				Left:     "<missing item>",
				Right:    nodeString(itemsR[i]),
				LeftPos:  nodePosition(left),
				RightPos: nodePosition(itemsR[i]),
			})
		case i >= len(itemsR):
			diffs = append(diffs, Diff{
				Left:     nodeString(itemsL[i]),
				Right:    "<missing item>",
				LeftPos:  nodePosition(itemsL[i]),
				RightPos: nodePosition(right),
			})
		default:
			child, err := compareNodes(itemsL[i], itemsR[i], "")
			if err != nil {
				return nil, err
			}
			diffs = append(diffs, child...)
		}
	}
	return diffs, nil
}
