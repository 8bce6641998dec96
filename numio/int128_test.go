package numio

import (
	"math"
	"testing"
)

func TestInt128FromInt64(t *testing.T) {
	tests := []struct {
		value    int64
		expected Int128
	}{
		{0, Int128{}},
		{1, Int128{Hi: 0, Lo: 1}},
		{-1, Int128{Hi: -1, Lo: ^uint64(0)}},
		{math.MinInt64, Int128{Hi: -1, Lo: 1 << 63}},
		{math.MaxInt64, Int128{Hi: 0, Lo: math.MaxInt64}},
	}

	for _, tt := range tests {
		got := Int128FromInt64(tt.value)
		if got != tt.expected {
			t.Errorf("Int128FromInt64(%d) = %+v, want %+v", tt.value, got, tt.expected)
		}
	}
}

func TestInt128_Sign(t *testing.T) {
	if !MinInt128.IsNegative() {
		t.Error("MinInt128 should be negative")
	}
	if MaxInt128.IsNegative() {
		t.Error("MaxInt128 should not be negative")
	}
	if !Int128FromInt64(0).IsZero() {
		t.Error("zero should report IsZero")
	}
	if Int128FromInt64(-1).IsZero() {
		t.Error("-1 should not report IsZero")
	}
}

func TestInt128_Cmp(t *testing.T) {
	tests := []struct {
		a, b     Int128
		expected int
	}{
		{Int128FromInt64(1), Int128FromInt64(2), -1},
		{Int128FromInt64(2), Int128FromInt64(1), 1},
		{Int128FromInt64(-5), Int128FromInt64(-5), 0},
		{MinInt128, MaxInt128, -1},
		{Int128FromInt64(-1), Int128FromInt64(0), -1},
		{Int128{Hi: 1, Lo: 0}, Int128{Hi: 0, Lo: ^uint64(0)}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.expected {
			t.Errorf("(%s).Cmp(%s) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestUint128_Cmp(t *testing.T) {
	tests := []struct {
		a, b     Uint128
		expected int
	}{
		{Uint128FromUint64(1), Uint128FromUint64(2), -1},
		{Uint128{Hi: 1, Lo: 0}, Uint128FromUint64(math.MaxUint64), 1},
		{MaxUint128, MaxUint128, 0},
	}

	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.expected {
			t.Errorf("(%s).Cmp(%s) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

// Stringer output feeds the divmod10 chain; exercise it across limb
// boundaries where the remainder crosses from the high limb.
func TestUint128_String_LimbCarry(t *testing.T) {
	tests := []struct {
		value    Uint128
		expected string
	}{
		{Uint128{Hi: 1, Lo: 0}, "18446744073709551616"},
		{Uint128{Hi: 1, Lo: 1}, "18446744073709551617"},
		{Uint128{Hi: 5, Lo: 4}, "92233720368547758084"},
		{Uint128{Hi: 1 << 63, Lo: 0}, "170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("Uint128{%d,%d}.String() = %q, want %q", tt.value.Hi, tt.value.Lo, got, tt.expected)
		}
	}
}

func TestInt128_String(t *testing.T) {
	if got := Int128FromInt64(-42).String(); got != "-42" {
		t.Errorf("String() = %q, want %q", got, "-42")
	}
	if got := MinInt128.String(); got != "-170141183460469231731687303715884105728" {
		t.Errorf("MinInt128.String() = %q", got)
	}
}
