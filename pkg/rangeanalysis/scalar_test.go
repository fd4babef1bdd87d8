package rangeanalysis

import "testing"

func TestScalarAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want Scalar
	}{
		{"finite + finite", Finite(3), Finite(4), Finite(7)},
		{"neg-inf absorbs finite", NegInf, Finite(1000), NegInf},
		{"pos-inf absorbs finite", PosInf, Finite(-1000), PosInf},
		{"neg-inf + neg-inf", NegInf, NegInf, NegInf},
		{"pos-inf + pos-inf", PosInf, PosInf, PosInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); !got.Equal(tt.want) {
				t.Errorf("%s.Add(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScalarAddIncompatibleInfinityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic combining NegInf and PosInf")
		}
	}()
	NegInf.Add(PosInf)
}

func TestScalarMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want Scalar
	}{
		{"finite * finite", Finite(6), Finite(-7), Finite(-42)},
		{"pos-inf * positive", PosInf, Finite(3), PosInf},
		{"pos-inf * negative", PosInf, Finite(-3), NegInf},
		{"pos-inf * zero", PosInf, Finite(0), Finite(0)},
		{"neg-inf * negative", NegInf, Finite(-3), PosInf},
		{"pos-inf * pos-inf", PosInf, PosInf, PosInf},
		{"neg-inf * neg-inf", NegInf, NegInf, PosInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); !got.Equal(tt.want) {
				t.Errorf("%s.Mul(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScalarMulIncompatibleInfinityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic multiplying NegInf by PosInf")
		}
	}()
	NegInf.Mul(PosInf)
}

func TestScalarDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want Scalar
	}{
		{"finite / finite", Finite(20), Finite(4), Finite(5)},
		{"finite / pos-inf", Finite(9000), PosInf, Finite(0)},
		{"finite / neg-inf", Finite(9000), NegInf, Finite(0)},
		{"pos-inf / positive", PosInf, Finite(4), PosInf},
		{"pos-inf / negative", PosInf, Finite(-4), NegInf},
		{"neg-inf / positive", NegInf, Finite(4), NegInf},
		{"neg-inf / negative", NegInf, Finite(-4), PosInf},
		{"pos-inf / neg-inf", PosInf, NegInf, NegInf},
		{"neg-inf / pos-inf", NegInf, PosInf, NegInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Div(tt.b); !got.Equal(tt.want) {
				t.Errorf("%s.Div(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScalarDivInfinityByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic dividing an infinity by zero")
		}
	}()
	PosInf.Div(Finite(0))
}

func TestScalarNegAbs(t *testing.T) {
	if got := NegInf.Neg(); !got.Equal(PosInf) {
		t.Errorf("NegInf.Neg() = %s, want PosInf", got)
	}
	if got := PosInf.Neg(); !got.Equal(NegInf) {
		t.Errorf("PosInf.Neg() = %s, want NegInf", got)
	}
	if got := Finite(-5).Neg(); !got.Equal(Finite(5)) {
		t.Errorf("Finite(-5).Neg() = %s, want 5", got)
	}
	if got := Finite(-5).Abs(); !got.Equal(Finite(5)) {
		t.Errorf("Finite(-5).Abs() = %s, want 5", got)
	}
	if got := NegInf.Abs(); !got.Equal(PosInf) {
		t.Errorf("NegInf.Abs() = %s, want PosInf", got)
	}
}

func TestScalarCompareOrdering(t *testing.T) {
	if !NegInf.Less(Finite(-1000000)) {
		t.Error("NegInf should be less than any finite value")
	}
	if !Finite(1000000).Less(PosInf) {
		t.Error("any finite value should be less than PosInf")
	}
	if !Finite(3).Less(Finite(4)) {
		t.Error("3 should be less than 4")
	}
	if !NegInf.Less(PosInf) {
		t.Error("NegInf should be less than PosInf")
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		s    Scalar
		want string
	}{
		{NegInf, "-inf"},
		{PosInf, "inf"},
		{Finite(42), "42"},
		{Finite(-7), "-7"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
