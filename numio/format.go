package numio

// Worst-case formatted lengths (sign plus digits, no terminator).
const (
	// MaxLen64 covers every 64-bit value: sign + 20 digits.
	MaxLen64 = 21
	// MaxLen128 covers every 128-bit value: sign + 39 digits.
	MaxLen128 = 40
)

// AppendUint appends the decimal representation of v to dst and returns
// the extended slice.
func AppendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}

	// Accumulate digits least-significant-first, then copy them out in
	// reverse. 32 bytes comfortably holds the 20-digit maximum.
	var tmp [32]byte
	j := 0
	for v > 0 {
		tmp[j] = '0' + byte(v%10)
		j++
		v /= 10
	}
	for j > 0 {
		j--
		dst = append(dst, tmp[j])
	}
	return dst
}

// AppendInt appends the decimal representation of v to dst and returns
// the extended slice.
func AppendInt(dst []byte, v int64) []byte {
	if v >= 0 {
		return AppendUint(dst, uint64(v))
	}
	// Magnitude via -(v+1)+1: v+1 is representable for every negative v,
	// so the minimum value never gets negated directly.
	mag := uint64(-(v + 1)) + 1
	return AppendUint(append(dst, '-'), mag)
}

// AppendUint128 appends the decimal representation of v to dst and
// returns the extended slice.
func AppendUint128(dst []byte, v Uint128) []byte {
	if v.IsZero() {
		return append(dst, '0')
	}

	var tmp [64]byte
	j := 0
	for !v.IsZero() {
		var d byte
		v, d = v.divmod10()
		tmp[j] = '0' + d
		j++
	}
	for j > 0 {
		j--
		dst = append(dst, tmp[j])
	}
	return dst
}

// AppendInt128 appends the decimal representation of v to dst and returns
// the extended slice.
func AppendInt128(dst []byte, v Int128) []byte {
	if v.IsNegative() {
		dst = append(dst, '-')
	}
	return AppendUint128(dst, v.magnitude())
}

// FormatInt returns the decimal representation of v.
func FormatInt(v int64) string {
	var buf [MaxLen64]byte
	return string(AppendInt(buf[:0], v))
}

// FormatUint returns the decimal representation of v.
func FormatUint(v uint64) string {
	var buf [MaxLen64]byte
	return string(AppendUint(buf[:0], v))
}

// FormatInt128 returns the decimal representation of v.
func FormatInt128(v Int128) string {
	var buf [MaxLen128]byte
	return string(AppendInt128(buf[:0], v))
}

// FormatUint128 returns the decimal representation of v.
func FormatUint128(v Uint128) string {
	var buf [MaxLen128]byte
	return string(AppendUint128(buf[:0], v))
}
