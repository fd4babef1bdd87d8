// Package rangegraph decodes the JSON control-flow graph format the
// analysis engine consumes into a rangeanalysis.Graph. The core
// rangeanalysis package does not import encoding/json: it stays agnostic
// to how a graph was produced.
package rangegraph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gitrdm/rangeflow/pkg/rangeanalysis"
)

// wireDocument is the top-level shape: a flat list of nodes, the first of
// which is the graph's entry point.
type wireDocument struct {
	Nodes []wireNode `json:"nodes"`
}

type wireNode struct {
	Key        string           `json:"key"`
	Value      wireStatement    `json:"value"`
	Successors []wireSuccessor  `json:"successors"`
}

type wireSuccessor struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}

type wireDeclaration struct {
	Identifier  string          `json:"identifier"`
	Initializer *wireExpression `json:"initializer"`
}

// wireStatement mirrors the tagged NodeValue union: "type" selects which
// of the following fields are populated.
type wireStatement struct {
	Type         string              `json:"type"`
	Declarations []wireDeclaration   `json:"declarations,omitempty"`
	Left         string              `json:"left,omitempty"` // variable_assignment only
	Right        *wireExpression     `json:"right,omitempty"`
	CompareLeft  *wireExpression     `json:"-"`
	Op           string              `json:"op,omitempty"`
}

// UnmarshalJSON handles the one field name ("left") shared between
// variable_assignment (a plain string) and comparison (an Expression) by
// decoding into a raw-message intermediate and re-dispatching per Type.
func (s *wireStatement) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type         string            `json:"type"`
		Declarations []wireDeclaration `json:"declarations"`
		Left         json.RawMessage   `json:"left"`
		Op           string            `json:"op"`
		Right        *wireExpression   `json:"right"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode node value: %w", err)
	}
	s.Type = probe.Type
	s.Declarations = probe.Declarations
	s.Op = probe.Op
	s.Right = probe.Right
	switch probe.Type {
	case "variable_declaration", "other":
		// no further fields
	case "variable_assignment":
		if len(probe.Left) > 0 {
			if err := json.Unmarshal(probe.Left, &s.Left); err != nil {
				return fmt.Errorf("decode variable_assignment.left: %w", err)
			}
		}
	case "comparison":
		if len(probe.Left) > 0 {
			expr := &wireExpression{}
			if err := json.Unmarshal(probe.Left, expr); err != nil {
				return fmt.Errorf("decode comparison.left: %w", err)
			}
			s.CompareLeft = expr
		}
	default:
		return fmt.Errorf("decode node value: unknown type %q", probe.Type)
	}
	return nil
}

// wireExpression mirrors the untagged Expression union: a JSON object with
// left/op/right is Binary, a JSON number is a literal, a JSON string is an
// identifier, and anything else (including null) is the opaque fallback.
type wireExpression struct {
	kind       rangeanalysis.ExprKind
	left       *wireExpression
	op         string
	right      *wireExpression
	number     int64
	identifier string
}

func (e *wireExpression) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.kind = rangeanalysis.ExprOpaque
		return nil
	}
	var asNumber int64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		e.kind = rangeanalysis.ExprNumber
		e.number = asNumber
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		e.kind = rangeanalysis.ExprIdentifier
		e.identifier = asString
		return nil
	}
	var asBinary struct {
		Left  *wireExpression `json:"left"`
		Op    string          `json:"op"`
		Right *wireExpression `json:"right"`
	}
	if err := json.Unmarshal(data, &asBinary); err == nil && asBinary.Left != nil && asBinary.Right != nil {
		e.kind = rangeanalysis.ExprBinary
		e.left = asBinary.Left
		e.op = asBinary.Op
		e.right = asBinary.Right
		return nil
	}
	e.kind = rangeanalysis.ExprOpaque
	return nil
}

func (e *wireExpression) toDomain() *rangeanalysis.Expression {
	if e == nil {
		return rangeanalysis.Opaque()
	}
	switch e.kind {
	case rangeanalysis.ExprBinary:
		return rangeanalysis.Bin(e.left.toDomain(), e.op, e.right.toDomain())
	case rangeanalysis.ExprNumber:
		return rangeanalysis.Num(e.number)
	case rangeanalysis.ExprIdentifier:
		return rangeanalysis.Ident(e.identifier)
	default:
		return rangeanalysis.Opaque()
	}
}

func (d wireDeclaration) toDomain() rangeanalysis.Declaration {
	return rangeanalysis.Declaration{
		Identifier:  d.Identifier,
		Initializer: d.Initializer.toDomain(),
	}
}

func (s wireStatement) toDomain() (rangeanalysis.Statement, error) {
	switch s.Type {
	case "variable_declaration":
		decls := make([]rangeanalysis.Declaration, len(s.Declarations))
		for i, d := range s.Declarations {
			decls[i] = d.toDomain()
		}
		return rangeanalysis.Statement{Kind: rangeanalysis.StmtVariableDeclaration, Declarations: decls}, nil
	case "variable_assignment":
		return rangeanalysis.Statement{
			Kind:        rangeanalysis.StmtVariableAssignment,
			AssignLeft:  s.Left,
			AssignRight: s.Right.toDomain(),
		}, nil
	case "comparison":
		return rangeanalysis.Statement{
			Kind:         rangeanalysis.StmtComparison,
			CompareLeft:  s.CompareLeft.toDomain(),
			CompareOp:    s.Op,
			CompareRight: s.Right.toDomain(),
		}, nil
	case "other":
		return rangeanalysis.Statement{Kind: rangeanalysis.StmtOther}, nil
	default:
		return rangeanalysis.Statement{}, fmt.Errorf("rangegraph: unknown node type %q", s.Type)
	}
}

// Decode reads a graph document from r and builds the rangeanalysis.Graph
// it describes. A malformed document is returned as an error, never a
// panic.
func Decode(r io.Reader) (*rangeanalysis.StaticGraph, error) {
	var doc wireDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("rangegraph: decode: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("rangegraph: decode: document has no nodes")
	}

	values := make(map[string]rangeanalysis.Statement, len(doc.Nodes))
	successors := make(map[string][]rangeanalysis.Successor, len(doc.Nodes))
	for _, n := range doc.Nodes {
		stmt, err := n.Value.toDomain()
		if err != nil {
			return nil, fmt.Errorf("rangegraph: node %q: %w", n.Key, err)
		}
		values[n.Key] = stmt
		succs := make([]rangeanalysis.Successor, len(n.Successors))
		for i, s := range n.Successors {
			succs[i] = rangeanalysis.Successor{Key: s.Key, Value: rangeanalysis.EdgeKind(s.Value)}
		}
		successors[n.Key] = succs
	}

	return rangeanalysis.NewStaticGraph(values, successors, doc.Nodes[0].Key), nil
}
