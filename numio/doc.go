// Package numio implements the integer/decimal-text conversion core of the
// Summit runtime.
//
// It covers the full Summit integer matrix:
//   - Formatting: i8..i128 and u8..u128 to canonical decimal text
//   - Parsing: i8..i64 and u8..u64 from decimal text with strict range checks
//
// The conversion routines are designed to be:
//   - Allocation-free (Append* variants write into a caller slice)
//   - Total over their input range (formatting has no failure path)
//   - Strict on range (a parsed value always fits its target width)
//   - Safe at the two's-complement minimum (the magnitude of the most
//     negative value is computed without negating it directly)
//
// # Token Syntax
//
// A decimal token is optional leading spaces or tabs, an optional single
// + or - sign, and one or more ASCII digits:
//
//	token  = {' ' | '\t'} ['+' | '-'] digit {digit}
//
// Parsing stops at the first non-digit byte; anything after a valid
// numeric prefix is ignored. A - sign is only accepted for signed targets.
//
// # Parsing Asymmetry
//
// 128-bit values can be formatted but not parsed. The Summit compiler never
// emits a 128-bit read, so the parser matrix deliberately stops at 64 bits.
//
// # Errors
//
// All parse failures are one kind. Malformed text and out-of-range values
// are reported identically as a *ParseError wrapping ErrParse; callers that
// need to react programmatically should use errors.Is(err, ErrParse).
package numio
