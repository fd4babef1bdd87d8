package rangeanalysis

import "fmt"

// kind distinguishes the three members of the extended-integer lattice.
type kind int8

const (
	kindNegInf kind = iota
	kindFinite
	kindPosInf
)

// Scalar is an element of the extended-integer lattice: every finite int64
// plus the two symbolic values NegInf and PosInf. It is the unit of value
// every Range endpoint is built from.
//
// Scalar arithmetic follows two's-complement wraparound for finite
// operands, matching Go's native int64 behavior, and the absorption rules
// below for infinities. Combining NegInf and PosInf under addition or
// multiplication has no sound result and raises ErrIncompatibleInfinity,
// which Analyze returns as an error; it never happens for a
// graph whose literals are all finite, which is the only input this
// package accepts.
type Scalar struct {
	k kind
	v int64
}

// NegInf is the scalar smaller than every finite value.
var NegInf = Scalar{k: kindNegInf}

// PosInf is the scalar larger than every finite value.
var PosInf = Scalar{k: kindPosInf}

// Finite wraps a concrete int64 as a Scalar.
func Finite(v int64) Scalar {
	return Scalar{k: kindFinite, v: v}
}

// IsFinite reports whether s holds a concrete int64.
func (s Scalar) IsFinite() bool {
	return s.k == kindFinite
}

// Int64 returns the wrapped value and true if s is finite, or (0, false)
// for either infinity.
func (s Scalar) Int64() (int64, bool) {
	if s.k != kindFinite {
		return 0, false
	}
	return s.v, true
}

// Compare orders NegInf < every finite value < PosInf, and orders finite
// values by their natural int64 ordering.
func (s Scalar) Compare(o Scalar) int {
	if s.k != o.k {
		switch {
		case s.k == kindNegInf, o.k == kindPosInf:
			return -1
		case s.k == kindPosInf, o.k == kindNegInf:
			return 1
		}
	}
	if s.k == kindFinite {
		switch {
		case s.v < o.v:
			return -1
		case s.v > o.v:
			return 1
		default:
			return 0
		}
	}
	return 0
}

func (s Scalar) Less(o Scalar) bool    { return s.Compare(o) < 0 }
func (s Scalar) LessEq(o Scalar) bool  { return s.Compare(o) <= 0 }
func (s Scalar) Equal(o Scalar) bool   { return s.Compare(o) == 0 }
func (s Scalar) Greater(o Scalar) bool { return s.Compare(o) > 0 }

// Add implements the extended-integer addition table: an infinity absorbs
// any finite partner and itself, except NegInf+PosInf which is undefined.
func (s Scalar) Add(o Scalar) Scalar {
	switch {
	case s.k == kindNegInf && o.k == kindPosInf:
		raiseInvariant(fmt.Errorf("%w: NegInf + PosInf", ErrIncompatibleInfinity))
	case s.k == kindPosInf && o.k == kindNegInf:
		raiseInvariant(fmt.Errorf("%w: PosInf + NegInf", ErrIncompatibleInfinity))
	case s.k == kindNegInf || o.k == kindNegInf:
		return NegInf
	case s.k == kindPosInf || o.k == kindPosInf:
		return PosInf
	}
	return Finite(s.v + o.v)
}

// Sub is s + (-o).
func (s Scalar) Sub(o Scalar) Scalar {
	return s.Add(o.Neg())
}

// Mul implements the extended-integer multiplication table: an infinity
// times a positive finite value is that infinity; two infinities of the
// same sign give PosInf; times zero is zero; times a negative value flips
// its sign.
// Multiplying the two infinities together is undefined.
func (s Scalar) Mul(o Scalar) Scalar {
	if s.k != kindFinite && o.k != kindFinite {
		if s.k == o.k {
			return PosInf
		}
		raiseInvariant(fmt.Errorf("%w: NegInf * PosInf", ErrIncompatibleInfinity))
	}
	if s.k != kindFinite {
		return mulInfByFinite(s.k, o.v)
	}
	if o.k != kindFinite {
		return mulInfByFinite(o.k, s.v)
	}
	return Finite(s.v * o.v)
}

func mulInfByFinite(infKind kind, finite int64) Scalar {
	switch {
	case finite == 0:
		return Finite(0)
	case (finite > 0) == (infKind == kindPosInf):
		return PosInf
	default:
		return NegInf
	}
}

// Div implements pointwise division of extended integers. Dividing a
// finite value by an infinity is zero; dividing an infinity by a finite
// value preserves or flips its sign depending on the divisor's sign;
// dividing an infinity by zero is undefined; dividing the two infinities
// by each other yields PosInf or NegInf per the original's sign table.
func (s Scalar) Div(o Scalar) Scalar {
	switch {
	case s.k == kindNegInf && o.k == kindNegInf:
		return PosInf
	case s.k == kindNegInf && o.k == kindPosInf:
		return NegInf
	case s.k == kindPosInf && o.k == kindNegInf:
		return NegInf
	case s.k == kindPosInf && o.k == kindPosInf:
		return PosInf
	case s.k != kindFinite && o.k == kindFinite:
		if o.v == 0 {
			raiseInvariant(fmt.Errorf("%w: infinity / 0", ErrIncompatibleInfinity))
		}
		if (o.v > 0) == (s.k == kindPosInf) {
			return PosInf
		}
		return NegInf
	case s.k == kindFinite && o.k != kindFinite:
		return Finite(0)
	default:
		return Finite(s.v / o.v)
	}
}

// Neg flips sign: NegInf and PosInf swap, finite values negate.
func (s Scalar) Neg() Scalar {
	switch s.k {
	case kindNegInf:
		return PosInf
	case kindPosInf:
		return NegInf
	default:
		return Finite(-s.v)
	}
}

// Abs returns the absolute value; both infinities map to PosInf.
func (s Scalar) Abs() Scalar {
	switch s.k {
	case kindFinite:
		if s.v < 0 {
			return Finite(-s.v)
		}
		return s
	default:
		return PosInf
	}
}

func (s Scalar) String() string {
	switch s.k {
	case kindNegInf:
		return "-inf"
	case kindPosInf:
		return "inf"
	default:
		return fmt.Sprintf("%d", s.v)
	}
}
