package rangeanalysis

import "fmt"

// comparisonOperator is one of the six relational operators a Comparison
// statement may use.
type comparisonOperator int8

const (
	cmpLess comparisonOperator = iota
	cmpLessEqual
	cmpGreater
	cmpGreaterEqual
	cmpEquals
	cmpNotEquals
)

func parseComparisonOperator(op string) comparisonOperator {
	switch op {
	case "<":
		return cmpLess
	case "<=":
		return cmpLessEqual
	case ">":
		return cmpGreater
	case ">=":
		return cmpGreaterEqual
	case "==":
		return cmpEquals
	case "!=":
		return cmpNotEquals
	default:
		raiseInvariant(fmt.Errorf("%w: comparison %q", ErrUnsupportedOperator, op))
		panic("unreachable")
	}
}

// flip swaps a comparison the way moving its operands around does:
// "a < b" read from b's side is "b > a".
func (c comparisonOperator) flip() comparisonOperator {
	switch c {
	case cmpLess:
		return cmpGreater
	case cmpLessEqual:
		return cmpGreaterEqual
	case cmpGreater:
		return cmpLess
	case cmpGreaterEqual:
		return cmpLessEqual
	default:
		return c
	}
}

// slice is the pair of ranges a single variable is narrowed to along the
// true and false edges of a comparison.
type slice struct {
	name string
	pass Range
	fail Range
}

// descend walks an expression tree, inverting each arithmetic operator to
// push the constraint implied by (cmpOp, rng) down onto the identifiers at
// its leaves. Each identifier leaf it reaches contributes one slice: the
// range that identifier must hold for the comparison to pass, and the
// range it must hold for the comparison to fail.
func descend(node *Expression, rng Range, cmpOp comparisonOperator, env Environment, out *[]slice) {
	switch node.Kind {
	case ExprIdentifier:
		var pr, fr Range
		switch cmpOp {
		case cmpLess:
			maxV, maxI := rng.Hi.Value, false
			if !rng.Hi.Inclusive {
				maxV = rng.Hi.Value.Add(Finite(-1))
			}
			pr = NewRange(NegInf, true, maxV, maxI)
			fr = NewRange(rng.Lo.Value, rng.Lo.Inclusive, PosInf, true)
		case cmpLessEqual:
			minV, minI := rng.Lo.Value, false
			if !rng.Lo.Inclusive {
				minV = rng.Lo.Value.Add(Finite(1))
			}
			pr = NewRange(NegInf, true, rng.Hi.Value, rng.Hi.Inclusive)
			fr = NewRange(minV, minI, PosInf, true)
		case cmpGreater:
			minV, minI := rng.Lo.Value, false
			if !rng.Lo.Inclusive {
				minV = rng.Lo.Value.Add(Finite(1))
			}
			pr = NewRange(minV, minI, PosInf, true)
			fr = NewRange(NegInf, true, rng.Hi.Value, rng.Hi.Inclusive)
		case cmpGreaterEqual:
			maxV, maxI := rng.Hi.Value, false
			if !rng.Hi.Inclusive {
				maxV = rng.Hi.Value.Add(Finite(-1))
			}
			pr = NewRange(rng.Lo.Value, rng.Lo.Inclusive, PosInf, true)
			fr = NewRange(NegInf, true, maxV, maxI)
		case cmpEquals:
			pr = rng
			fr = Universe()
		case cmpNotEquals:
			pr = Universe()
			fr = rng
		}
		e := Eval(node, env)
		pass, passOK := e.IntersectRange(pr).Hull()
		fail, failOK := e.IntersectRange(fr).Hull()
		if passOK && failOK {
			*out = append(*out, slice{name: node.Identifier, pass: pass, fail: fail})
		}
	case ExprBinary:
		l, lok := Eval(node.Left, env).Hull()
		r, rok := Eval(node.Right, env).Hull()
		if !lok || !rok {
			raiseInvariant(fmt.Errorf("%w: operand of %q has no range", ErrUnboundVariable, node.Op))
		}
		switch node.Op {
		case "+":
			descend(node.Left, rng.Sub(r), cmpOp, env, out)
			descend(node.Right, rng.Sub(l), cmpOp, env, out)
		case "-":
			descend(node.Left, rng.Add(r), cmpOp, env, out)
			descend(node.Right, l.Sub(rng), cmpOp.flip(), env, out)
		case "*":
			descend(node.Left, rng.Div(r), cmpOp, env, out)
			descend(node.Right, rng.Div(l), cmpOp, env, out)
		case "/":
			descend(node.Left, rng.Mul(r), cmpOp, env, out)
			descend(node.Right, l.Div(rng), cmpOp.flip(), env, out)
		case "%":
			descend(node.Right, rng, cmpOp, env, out)
		default:
			raiseInvariant(fmt.Errorf("%w: %q", ErrUnsupportedOperator, node.Op))
		}
	default:
		// Number and opaque leaves contribute nothing to narrow: the
		// comparison tells us nothing about a variable they don't name.
	}
}

// handleComparison computes, for a Comparison statement's two operands,
// the per-variable pass/fail slices and any always-true/always-false
// diagnostic the comparison's current ranges already settle.
func handleComparison(location string, left *Expression, op string, right *Expression, env Environment) ([]slice, []Diagnostic) {
	cmpOp := parseComparisonOperator(op)
	l, lok := Eval(left, env).Hull()
	r, rok := Eval(right, env).Hull()
	if !lok || !rok {
		raiseInvariant(fmt.Errorf("%w: comparison operand at %s has no range", ErrUnboundVariable, location))
	}

	var slices []slice
	descend(left, r, cmpOp, env, &slices)
	descend(right, l, cmpOp.flip(), env, &slices)

	var alwaysTrue, alwaysFalse bool
	switch cmpOp {
	case cmpLess:
		alwaysTrue = l.Hi.CompareLower(r.Lo) < 0
		alwaysFalse = l.Lo.CompareUpper(r.Hi) > 0
	case cmpLessEqual:
		alwaysTrue = l.Hi.CompareLower(r.Lo) <= 0
		alwaysFalse = l.Lo.CompareUpper(r.Hi) >= 0
	case cmpGreater:
		alwaysTrue = l.Lo.CompareUpper(r.Hi) > 0
		alwaysFalse = l.Hi.CompareLower(r.Lo) < 0
	case cmpGreaterEqual:
		alwaysTrue = l.Lo.CompareUpper(r.Hi) >= 0
		alwaysFalse = l.Hi.CompareLower(r.Lo) <= 0
	case cmpEquals:
		alwaysTrue = l.Equal(r) && l.Lo.Value.Equal(l.Hi.Value)
		alwaysFalse = l.Hi.CompareLower(r.Lo) < 0 || l.Lo.CompareUpper(r.Hi) > 0
	case cmpNotEquals:
		alwaysTrue = l.Hi.CompareLower(r.Lo) < 0 || l.Lo.CompareUpper(r.Hi) > 0
		alwaysFalse = l.Equal(r) && l.Lo.Value.Equal(l.Hi.Value)
	}

	var diagnostics []Diagnostic
	if alwaysTrue {
		diagnostics = append(diagnostics, Diagnostic{Location: location, AlwaysTrue: true})
	}
	if alwaysFalse {
		diagnostics = append(diagnostics, Diagnostic{Location: location, AlwaysTrue: false})
	}
	return slices, diagnostics
}
