package rangeanalysis

import "testing"

func TestSetUnionMergesTouchingAndOverlapping(t *testing.T) {
	value := NewSetValue(Finite(-3), true, Finite(3), false)
	if got, want := value.String(), "[-3, 3)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	value = value.UnionValue(Finite(-5), false, Finite(0), false)
	if got, want := value.String(), "(-5, 3)"; got != want {
		t.Fatalf("after touching union: String() = %q, want %q", got, want)
	}

	value = value.UnionValue(Finite(-5), true, Finite(3), true)
	if got, want := value.String(), "[-5, 3]"; got != want {
		t.Fatalf("after widening union: String() = %q, want %q", got, want)
	}

	got := NewSetValue(Finite(-5), false, Finite(0), false).
		UnionValue(Finite(-3), true, Finite(3), false).String()
	if want := "(-5, 3)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSetUnionKeepsDisjointRangesApart(t *testing.T) {
	value := NewSetValue(Finite(-5), true, Finite(5), false)
	value = value.UnionValue(Finite(5), false, Finite(8), true)
	if got, want := value.String(), "[-5, 5) U (5, 8]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	closed := value.UnionValue(Finite(5), true, Finite(5), true)
	if got, want := closed.String(), "[-5, 8]"; got != want {
		t.Fatalf("after single-point bridge union: String() = %q, want %q", got, want)
	}

	reversed := NewSetValue(Finite(5), true, Finite(5), true).Union(value)
	if got, want := reversed.String(), "[-5, 8]"; got != want {
		t.Fatalf("union is not commutative: String() = %q, want %q", got, want)
	}
}

func TestSetUnionPreservesMultipleDisjointRanges(t *testing.T) {
	value := NewSetValue(Finite(-3), false, Finite(10), true).
		UnionValue(Finite(-8), false, Finite(-6), true)
	if got, want := value.String(), "(-8, -6] U (-3, 10]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSetIntersect(t *testing.T) {
	value := NewSetValue(Finite(-5), true, Finite(5), false)
	other := NewSetValue(Finite(-3), true, Finite(-1), true).
		UnionValue(Finite(2), false, Finite(4), true)
	value = value.Intersect(other)
	if got, want := value.String(), "[-3, -1] U (2, 4]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	reversed := other.Intersect(NewSetValue(Finite(-5), true, Finite(5), false))
	if got, want := reversed.String(), "[-3, -1] U (2, 4]"; got != want {
		t.Fatalf("intersect is not commutative: String() = %q, want %q", got, want)
	}
}

func TestSetIntersectNarrowsToOverlap(t *testing.T) {
	value := NewSetValue(Finite(-5), true, Finite(5), false)
	other := NewSetValue(Finite(-3), false, Finite(10), true).
		UnionValue(Finite(-8), false, Finite(-6), true)
	value = value.Intersect(other)
	if got, want := value.String(), "(-3, 5)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSetInverseOfEmptyIsUniverse(t *testing.T) {
	if got, want := Empty().Inverse().String(), "[-inf, inf]"; got != want {
		t.Fatalf("Empty().Inverse() = %q, want %q", got, want)
	}
}

func TestSetInverseOfUniverseIsEmpty(t *testing.T) {
	inv := UniverseSet().Inverse()
	if !inv.IsEmpty() {
		t.Fatalf("UniverseSet().Inverse() should be empty, got %q", inv.String())
	}
	if got, want := inv.String(), "(0, 0)"; got != want {
		t.Fatalf("UniverseSet().Inverse().String() = %q, want %q", got, want)
	}
}

func TestSetInverseAcrossGaps(t *testing.T) {
	value := NewSetValue(Finite(-7), false, Finite(-2), false).
		UnionValue(Finite(1), true, Finite(3), true)
	if got, want := value.String(), "(-7, -2) U [1, 3]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	inv := value.Inverse()
	if got, want := inv.String(), "[-inf, -7] U [-2, 1) U (3, inf]"; got != want {
		t.Fatalf("Inverse() = %q, want %q", got, want)
	}
}

func TestRangeBeforeAfterIntegration(t *testing.T) {
	value := NewSetValue(Finite(-3), false, Finite(4), true)
	r, ok := value.Hull()
	if !ok {
		t.Fatal("Hull() of a non-empty set should succeed")
	}
	if got, want := r.String(), value.String(); got != want {
		t.Fatalf("Hull() = %q, want %q", got, want)
	}
	if got, want := r.Before().String(), "[-inf, -3]"; got != want {
		t.Fatalf("Before() = %q, want %q", got, want)
	}
	if got, want := r.After().String(), "(4, inf]"; got != want {
		t.Fatalf("After() = %q, want %q", got, want)
	}
}

func TestSetStringEmpty(t *testing.T) {
	if got, want := Empty().String(), "(0, 0)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
