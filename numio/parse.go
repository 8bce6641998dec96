package numio

import (
	"errors"
	"fmt"
	"math"
)

// ErrParse is the single parse failure kind. Malformed text and
// out-of-range values are deliberately indistinguishable.
var ErrParse = errors.New("invalid decimal input")

// ParseError reports a failed conversion, naming the target type.
type ParseError struct {
	Type  string // target type name: "i8", "u64", ...
	Input string // the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: invalid decimal input %q", e.Type, e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// scanMagnitude scans a decimal token: optional spaces/tabs, optional
// single sign, one or more ASCII digits. The magnitude accumulates into a
// uint64 with a pre-multiply overflow guard. Bytes after the last digit
// are ignored. Returns ok=false on a missing digit, a - sign when
// allowNeg is false, or 64-bit overflow.
func scanMagnitude(s []byte, allowNeg bool) (mag uint64, neg bool, ok bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	if i < len(s) {
		switch s[i] {
		case '-':
			if !allowNeg {
				return 0, false, false
			}
			neg = true
			i++
		case '+':
			i++
		}
	}

	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return 0, false, false
	}

	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if mag > (math.MaxUint64-d)/10 {
			return 0, false, false
		}
		mag = mag*10 + d
	}

	return mag, neg, true
}

// parseSigned scans s and range-checks the result against [min, max].
func parseSigned(s []byte, min, max int64) (int64, bool) {
	mag, neg, ok := scanMagnitude(s, true)
	if !ok {
		return 0, false
	}
	if neg {
		// min is negative; its magnitude fits in a uint64 for every
		// signed width up to 64 bits.
		if mag > uint64(-(min+1))+1 {
			return 0, false
		}
		// Wraps to the minimum when mag is exactly -min.
		return -int64(mag), true
	}
	if mag > uint64(max) {
		return 0, false
	}
	return int64(mag), true
}

// parseUnsigned scans s and range-checks the result against [0, max].
func parseUnsigned(s []byte, max uint64) (uint64, bool) {
	mag, _, ok := scanMagnitude(s, false)
	if !ok || mag > max {
		return 0, false
	}
	return mag, true
}

// ParseInt8 converts a decimal token to an int8.
func ParseInt8(s []byte) (int8, error) {
	v, ok := parseSigned(s, math.MinInt8, math.MaxInt8)
	if !ok {
		return 0, &ParseError{Type: "i8", Input: string(s)}
	}
	return int8(v), nil
}

// ParseUint8 converts a decimal token to a uint8.
func ParseUint8(s []byte) (uint8, error) {
	v, ok := parseUnsigned(s, math.MaxUint8)
	if !ok {
		return 0, &ParseError{Type: "u8", Input: string(s)}
	}
	return uint8(v), nil
}

// ParseInt16 converts a decimal token to an int16.
func ParseInt16(s []byte) (int16, error) {
	v, ok := parseSigned(s, math.MinInt16, math.MaxInt16)
	if !ok {
		return 0, &ParseError{Type: "i16", Input: string(s)}
	}
	return int16(v), nil
}

// ParseUint16 converts a decimal token to a uint16.
func ParseUint16(s []byte) (uint16, error) {
	v, ok := parseUnsigned(s, math.MaxUint16)
	if !ok {
		return 0, &ParseError{Type: "u16", Input: string(s)}
	}
	return uint16(v), nil
}

// ParseInt32 converts a decimal token to an int32.
func ParseInt32(s []byte) (int32, error) {
	v, ok := parseSigned(s, math.MinInt32, math.MaxInt32)
	if !ok {
		return 0, &ParseError{Type: "i32", Input: string(s)}
	}
	return int32(v), nil
}

// ParseUint32 converts a decimal token to a uint32.
func ParseUint32(s []byte) (uint32, error) {
	v, ok := parseUnsigned(s, math.MaxUint32)
	if !ok {
		return 0, &ParseError{Type: "u32", Input: string(s)}
	}
	return uint32(v), nil
}

// ParseInt64 converts a decimal token to an int64.
func ParseInt64(s []byte) (int64, error) {
	v, ok := parseSigned(s, math.MinInt64, math.MaxInt64)
	if !ok {
		return 0, &ParseError{Type: "i64", Input: string(s)}
	}
	return v, nil
}

// ParseUint64 converts a decimal token to a uint64.
func ParseUint64(s []byte) (uint64, error) {
	v, ok := parseUnsigned(s, math.MaxUint64)
	if !ok {
		return 0, &ParseError{Type: "u64", Input: string(s)}
	}
	return v, nil
}
