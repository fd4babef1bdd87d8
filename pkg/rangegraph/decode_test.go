package rangegraph

import (
	"strings"
	"testing"
)

func TestDecodeFiveNodeDocument(t *testing.T) {
	doc := `{
		"nodes": [
			{"key": "a", "value": {"type": "variable_declaration", "declarations": [{"identifier": "a", "initializer": {"type": "other"}}]}, "successors": [{"key": "b", "value": -1}]},
			{"key": "b", "value": {"type": "variable_declaration", "declarations": [{"identifier": "b", "initializer": {"type": "other"}}]}, "successors": [{"key": "c", "value": -1}]},
			{"key": "c", "value": {"type": "comparison", "left": "a", "op": "<", "right": 13}, "successors": [{"key": "d", "value": 1}, {"key": "e", "value": 0}]},
			{"key": "d", "value": {"type": "other"}, "successors": []},
			{"key": "e", "value": {"type": "comparison", "left": "b", "op": "<=", "right": 23}, "successors": [{"key": "d", "value": -1}]}
		]
	}`

	g, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}
	if got, want := g.First(), "a"; got != want {
		t.Errorf("First() = %q, want %q", got, want)
	}

	stmt, ok := g.ValueOf("c")
	if !ok {
		t.Fatal("ValueOf(c) should find the comparison node")
	}
	if stmt.CompareOp != "<" {
		t.Errorf("CompareOp = %q, want %q", stmt.CompareOp, "<")
	}
	if stmt.CompareLeft.Identifier != "a" {
		t.Errorf("CompareLeft.Identifier = %q, want %q", stmt.CompareLeft.Identifier, "a")
	}
	if stmt.CompareRight.Number != 13 {
		t.Errorf("CompareRight.Number = %d, want %d", stmt.CompareRight.Number, 13)
	}

	succs, ok := g.SuccessorsOf("c")
	if !ok || len(succs) != 2 {
		t.Fatalf("SuccessorsOf(c) = %v, want two edges", succs)
	}
}

func TestDecodeBinaryExpression(t *testing.T) {
	doc := `{
		"nodes": [
			{"key": "a", "value": {"type": "variable_assignment", "left": "x", "right": {"left": "y", "op": "+", "right": 1}}, "successors": []}
		]
	}`
	g, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode returned an error: %v", err)
	}
	stmt, _ := g.ValueOf("a")
	if stmt.AssignRight.Op != "+" {
		t.Fatalf("AssignRight.Op = %q, want %q", stmt.AssignRight.Op, "+")
	}
	if stmt.AssignRight.Left.Identifier != "y" {
		t.Errorf("AssignRight.Left.Identifier = %q, want %q", stmt.AssignRight.Left.Identifier, "y")
	}
	if stmt.AssignRight.Right.Number != 1 {
		t.Errorf("AssignRight.Right.Number = %d, want %d", stmt.AssignRight.Right.Number, 1)
	}
}

func TestDecodeEmptyDocumentIsError(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"nodes": []}`))
	if err == nil {
		t.Fatal("expected an error decoding a document with no nodes")
	}
}

func TestDecodeUnknownNodeTypeIsError(t *testing.T) {
	doc := `{"nodes": [{"key": "a", "value": {"type": "bogus"}, "successors": []}]}`
	_, err := Decode(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error decoding a node with an unrecognized type")
	}
}
