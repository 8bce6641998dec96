package numio

import (
	"math"
	"testing"
)

// ============================================================
// 64-bit Formatting
// ============================================================

func TestAppendInt(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{42, "42"},
		{-42, "-42"},
		{127, "127"},
		{-128, "-128"},
		{32767, "32767"},
		{-32768, "-32768"},
		{2147483647, "2147483647"},
		{-2147483648, "-2147483648"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := string(AppendInt(nil, tt.value))
			if got != tt.expected {
				t.Errorf("AppendInt(%d) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestAppendUint(t *testing.T) {
	tests := []struct {
		value    uint64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{255, "255"},
		{65535, "65535"},
		{4294967295, "4294967295"},
		{math.MaxUint64, "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := string(AppendUint(nil, tt.value))
			if got != tt.expected {
				t.Errorf("AppendUint(%d) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestAppendInt_PreservesPrefix(t *testing.T) {
	dst := []byte("n=")
	got := string(AppendInt(dst, -7))
	if got != "n=-7" {
		t.Errorf("append to prefixed dst = %q, want %q", got, "n=-7")
	}
}

// ============================================================
// 128-bit Formatting
// ============================================================

func TestAppendInt128(t *testing.T) {
	tests := []struct {
		name     string
		value    Int128
		expected string
	}{
		{"zero", Int128{}, "0"},
		{"one", Int128FromInt64(1), "1"},
		{"minus_one", Int128FromInt64(-1), "-1"},
		{"int64_min", Int128FromInt64(math.MinInt64), "-9223372036854775808"},
		{"max", MaxInt128, "170141183460469231731687303715884105727"},
		{"min", MinInt128, "-170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendInt128(nil, tt.value))
			if got != tt.expected {
				t.Errorf("AppendInt128 = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppendInt128_MinDigitCount(t *testing.T) {
	// The minimum has no positive counterpart; its 39-digit magnitude
	// must come through without digit loss.
	got := string(AppendInt128(nil, MinInt128))
	if len(got) != 40 { // '-' + 39 digits
		t.Fatalf("MinInt128 formatted as %q (%d bytes), want 40 bytes", got, len(got))
	}
	if got[0] != '-' {
		t.Errorf("MinInt128 missing leading '-': %q", got)
	}
}

func TestAppendUint128(t *testing.T) {
	tests := []struct {
		name     string
		value    Uint128
		expected string
	}{
		{"zero", Uint128{}, "0"},
		{"uint64_max", Uint128FromUint64(math.MaxUint64), "18446744073709551615"},
		{"two_pow_64", Uint128{Hi: 1, Lo: 0}, "18446744073709551616"},
		{"max", MaxUint128, "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendUint128(nil, tt.value))
			if got != tt.expected {
				t.Errorf("AppendUint128 = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatInt(-12345); got != "-12345" {
		t.Errorf("FormatInt = %q", got)
	}
	if got := FormatUint(12345); got != "12345" {
		t.Errorf("FormatUint = %q", got)
	}
	if got := FormatInt128(MinInt128); got != "-170141183460469231731687303715884105728" {
		t.Errorf("FormatInt128 = %q", got)
	}
	if got := FormatUint128(MaxUint128); got != "340282366920938463463374607431768211455" {
		t.Errorf("FormatUint128 = %q", got)
	}
}

// ============================================================
// Benchmarks
// ============================================================

func BenchmarkAppendInt(b *testing.B) {
	var buf [MaxLen64]byte
	for i := 0; i < b.N; i++ {
		AppendInt(buf[:0], math.MinInt64)
	}
}

func BenchmarkAppendUint128(b *testing.B) {
	var buf [MaxLen128]byte
	for i := 0; i < b.N; i++ {
		AppendUint128(buf[:0], MaxUint128)
	}
}
