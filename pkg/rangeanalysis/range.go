package rangeanalysis

import "fmt"

// Lower is the left endpoint of a Range: a Scalar value together with
// whether that value itself belongs to the range.
type Lower struct {
	Value     Scalar
	Inclusive bool
}

// Upper is the right endpoint of a Range.
type Upper struct {
	Value     Scalar
	Inclusive bool
}

// Compare orders two lower bounds. At equal value an inclusive bound
// sorts before an exclusive one, since [3 starts at 3 while (3 effectively
// starts just past it.
func (a Lower) Compare(b Lower) int {
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return 0
	case a.Inclusive:
		return -1
	default:
		return 1
	}
}

// Compare orders two upper bounds. At equal value an inclusive bound sorts
// after an exclusive one, the mirror image of Lower.Compare.
func (a Upper) Compare(b Upper) int {
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	switch {
	case a.Inclusive == b.Inclusive:
		return 0
	case a.Inclusive:
		return 1
	default:
		return -1
	}
}

// CompareUpper answers whether lower bound a sits at-or-before upper bound
// b. At equal value, two inclusive bounds touch (0); any exclusive bound
// means a sits strictly after b (1), since there is no value both cover.
func (a Lower) CompareUpper(b Upper) int {
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	if a.Inclusive && b.Inclusive {
		return 0
	}
	return 1
}

// CompareLower is the mirror of Lower.CompareUpper.
func (a Upper) CompareLower(b Lower) int {
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	if a.Inclusive && b.Inclusive {
		return 0
	}
	return -1
}

func (a Lower) flip() bool { return !a.Inclusive }
func (a Upper) flip() bool { return !a.Inclusive }

// Range is a single contiguous closed/open/half-open interval over the
// extended-integer lattice.
type Range struct {
	Lo Lower
	Hi Upper
}

// NewRange builds a Range from explicit endpoint values and inclusivity
// flags.
func NewRange(loVal Scalar, loInclusive bool, hiVal Scalar, hiInclusive bool) Range {
	return Range{
		Lo: Lower{Value: loVal, Inclusive: loInclusive},
		Hi: Upper{Value: hiVal, Inclusive: hiInclusive},
	}
}

// Point returns the single-value range [v, v].
func Point(v Scalar) Range {
	return NewRange(v, true, v, true)
}

// Universe spans the entire extended-integer lattice.
func Universe() Range {
	return NewRange(NegInf, true, PosInf, true)
}

// Before returns every value strictly less than r's lower bound.
func (r Range) Before() Range {
	return NewRange(NegInf, true, r.Lo.Value, r.Lo.flip())
}

// After returns every value strictly greater than r's upper bound.
func (r Range) After() Range {
	return NewRange(r.Hi.Value, r.Hi.flip(), PosInf, true)
}

// Inverse splits the complement of r into the region below it and the
// region above it.
func (r Range) Inverse() (Range, Range) {
	return r.Before(), r.After()
}

// Equal reports whether two ranges have identical endpoints.
func (r Range) Equal(o Range) bool {
	return r.Lo.Compare(o.Lo) == 0 && r.Hi.Compare(o.Hi) == 0
}

func (r Range) String() string {
	lo := "["
	if !r.Lo.Inclusive {
		lo = "("
	}
	hi := "]"
	if !r.Hi.Inclusive {
		hi = ")"
	}
	return fmt.Sprintf("%s%s, %s%s", lo, r.Lo.Value, r.Hi.Value, hi)
}

// Add implements hull addition: the new lower bound is the sum of the two
// lower bounds, and likewise for the upper bound. Two exclusive bounds on
// the same side tighten the sum by one to rule out the boundary case where
// neither operand can reach its own excluded endpoint simultaneously; a
// mix of inclusive and exclusive is reported as exclusive without the
// tightening, matching the original's not-quite-symmetric rule.
func (r Range) Add(o Range) Range {
	var lo Lower
	switch {
	case r.Lo.Inclusive && o.Lo.Inclusive:
		lo = Lower{Value: r.Lo.Value.Add(o.Lo.Value), Inclusive: true}
	case !r.Lo.Inclusive && !o.Lo.Inclusive:
		lo = Lower{Value: r.Lo.Value.Add(o.Lo.Value.Add(Finite(1))), Inclusive: false}
	default:
		lo = Lower{Value: r.Lo.Value.Add(o.Lo.Value), Inclusive: false}
	}
	var hi Upper
	switch {
	case r.Hi.Inclusive && o.Hi.Inclusive:
		hi = Upper{Value: r.Hi.Value.Add(o.Hi.Value), Inclusive: true}
	case !r.Hi.Inclusive && !o.Hi.Inclusive:
		hi = Upper{Value: r.Hi.Value.Add(o.Hi.Value.Add(Finite(-1))), Inclusive: false}
	default:
		hi = Upper{Value: r.Hi.Value.Add(o.Hi.Value), Inclusive: false}
	}
	return Range{Lo: lo, Hi: hi}
}

// Sub is r + (-o), with o's endpoints negated and swapped.
func (r Range) Sub(o Range) Range {
	negated := NewRange(o.Hi.Value.Neg(), o.Hi.Inclusive, o.Lo.Value.Neg(), o.Lo.Inclusive)
	return r.Add(negated)
}

// Mul implements hull multiplication with the same endpoint-tightening
// rule as Add, using multiplication in place of addition.
func (r Range) Mul(o Range) Range {
	var lo Lower
	switch {
	case r.Lo.Inclusive && o.Lo.Inclusive:
		lo = Lower{Value: r.Lo.Value.Mul(o.Lo.Value), Inclusive: true}
	case !r.Lo.Inclusive && !o.Lo.Inclusive:
		lo = Lower{Value: r.Lo.Value.Mul(o.Lo.Value.Add(Finite(1))), Inclusive: false}
	default:
		lo = Lower{Value: r.Lo.Value.Mul(o.Lo.Value), Inclusive: false}
	}
	var hi Upper
	switch {
	case r.Hi.Inclusive && o.Hi.Inclusive:
		hi = Upper{Value: r.Hi.Value.Mul(o.Hi.Value), Inclusive: true}
	case !r.Hi.Inclusive && !o.Hi.Inclusive:
		hi = Upper{Value: r.Hi.Value.Mul(o.Hi.Value.Add(Finite(-1))), Inclusive: false}
	default:
		hi = Upper{Value: r.Hi.Value.Mul(o.Hi.Value), Inclusive: false}
	}
	return Range{Lo: lo, Hi: hi}
}

// Div implements hull division. When the divisor is a single point it
// divides both endpoints directly. Otherwise it locates the divisor's
// closest-to-zero negative and positive bounds (clamped to -1 and 1, so
// that zero itself is skipped) and picks the dividend-dominant endpoint to
// bound the quotient, following the original's sign-straddling tie-break
// exactly: the dominance test compares the dividend's |lower bound|
// against its raw upper bound, not against |upper bound|. A divisor range
// containing only zero is an invariant violation.
func (r Range) Div(o Range) Range {
	if o.Lo.Value.Equal(o.Hi.Value) && o.Lo.Inclusive && o.Hi.Inclusive {
		if o.Lo.Value.Equal(Finite(0)) {
			raiseInvariant(fmt.Errorf("%w: %s", ErrDivisionByZeroRange, o))
		}
		return NewRange(r.Lo.Value.Div(o.Lo.Value), r.Lo.Inclusive, r.Hi.Value.Div(o.Hi.Value), r.Hi.Inclusive)
	}

	var biggestNeg, smallestNeg, smallestPos, biggestPos *Scalar
	if o.Lo.Value.Less(Finite(0)) {
		bn := o.Lo.Value
		biggestNeg = &bn
		if o.Hi.Value.Compare(Finite(-1)) >= 0 {
			sn := Finite(-1)
			smallestNeg = &sn
		} else {
			sn := o.Hi.Value
			smallestNeg = &sn
		}
	}
	if o.Hi.Value.Greater(Finite(0)) {
		bp := o.Hi.Value
		biggestPos = &bp
		if o.Lo.Value.Compare(Finite(1)) <= 0 {
			sp := Finite(1)
			smallestPos = &sp
		} else {
			sp := o.Lo.Value
			smallestPos = &sp
		}
	}

	switch {
	case smallestNeg != nil && smallestPos != nil:
		n, p := *smallestNeg, *smallestPos
		switch {
		case r.Lo.Value.Greater(Finite(0)) && r.Hi.Value.Greater(Finite(0)):
			return NewRange(r.Hi.Value.Div(n), true, r.Hi.Value.Div(p), true)
		case r.Hi.Value.Less(Finite(0)):
			return NewRange(r.Lo.Value.Div(p), true, r.Lo.Value.Div(n), true)
		case r.Lo.Value.Abs().Less(r.Hi.Value):
			return NewRange(r.Hi.Value.Div(n), true, r.Hi.Value.Div(p), true)
		default:
			return NewRange(r.Lo.Value.Div(p), true, r.Lo.Value.Div(n), true)
		}
	case biggestNeg != nil && smallestNeg != nil:
		return NewRange(r.Hi.Value.Div(*smallestNeg), true, r.Lo.Value.Div(*biggestNeg), true)
	case smallestPos != nil && biggestPos != nil:
		return NewRange(r.Lo.Value.Div(*biggestPos), true, r.Hi.Value.Div(*smallestPos), true)
	default:
		raiseInvariant(fmt.Errorf("%w: %s", ErrDivisionByZeroRange, o))
		panic("unreachable")
	}
}

// Rem mirrors the original's modulus operator exactly: it returns the
// divisor range unchanged. This looks like a stub, and it is one inherited
// from the original implementation, but descend never evaluates a literal
// "%" range this way for its own pass/fail slices (it descends straight
// into the right-hand operand instead); Rem is only reachable when "%"
// appears inside a plain value expression being folded to a literal.
func (r Range) Rem(o Range) Range {
	return o
}
