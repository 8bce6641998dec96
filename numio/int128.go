package numio

import "math/bits"

// Uint128 is an unsigned 128-bit integer stored as two 64-bit limbs.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed two's-complement 128-bit integer.
// The sign lives in the high limb; the low limb is raw bits.
type Int128 struct {
	Hi int64
	Lo uint64
}

// 128-bit range limits.
var (
	MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)} // 2^128 - 1
	MaxInt128  = Int128{Hi: 1<<63 - 1, Lo: ^uint64(0)}   // 2^127 - 1
	MinInt128  = Int128{Hi: -1 << 63, Lo: 0}             // -2^127
)

// Uint128FromUint64 widens a uint64 to a Uint128.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128FromInt64 sign-extends an int64 to an Int128.
func Int128FromInt64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// IsZero reports whether v == 0.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Cmp returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Uint128) Cmp(other Uint128) int {
	switch {
	case v.Hi != other.Hi:
		if v.Hi < other.Hi {
			return -1
		}
		return 1
	case v.Lo != other.Lo:
		if v.Lo < other.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the decimal representation.
func (v Uint128) String() string {
	return string(AppendUint128(nil, v))
}

// divmod10 returns v/10 and v%10. The high limb divides directly; the
// remainder carries into a 128/64 division of the low limb.
func (v Uint128) divmod10() (Uint128, byte) {
	hi := v.Hi / 10
	rem := v.Hi % 10
	lo, r := bits.Div64(rem, v.Lo, 10)
	return Uint128{Hi: hi, Lo: lo}, byte(r)
}

// IsZero reports whether v == 0.
func (v Int128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// IsNegative reports whether v < 0.
func (v Int128) IsNegative() bool {
	return v.Hi < 0
}

// Cmp returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Int128) Cmp(other Int128) int {
	switch {
	case v.Hi != other.Hi:
		if v.Hi < other.Hi {
			return -1
		}
		return 1
	case v.Lo != other.Lo:
		if v.Lo < other.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the decimal representation.
func (v Int128) String() string {
	return string(AppendInt128(nil, v))
}

// magnitude returns |v| as an unsigned value. Negative values are negated
// in two's complement (complement both limbs, add one with carry), which
// stays correct for MinInt128 even though it has no positive counterpart.
func (v Int128) magnitude() Uint128 {
	if v.Hi >= 0 {
		return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
	}
	lo, carry := bits.Add64(^v.Lo, 1, 0)
	return Uint128{Hi: ^uint64(v.Hi) + carry, Lo: lo}
}
