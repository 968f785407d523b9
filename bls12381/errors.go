package bls12381

import "errors"

// Error taxonomy for the BLS12-381 codec and group adapter. Each maps
// onto one EIP-2537 precompile error code; the EncodingError and
// MemoryError codes have no counterpart here. The precompiles package
// does not wrap or translate them so callers can errors.Is through.
var (
	// ErrInvalidElement is returned when a field element's padding or
	// magnitude is malformed: a nonzero high byte, or a value >= p.
	ErrInvalidElement = errors.New("bls12381: invalid field element encoding")

	// ErrPointNotOnCurve is returned when a decoded (x, y) pair is not
	// the point at infinity and does not satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("bls12381: point not on curve")

	// ErrPointNotInSubgroup is returned when a point is on the curve
	// (or its twist) but outside the prime-order subgroup. Only the
	// pairing precompile checks this by default; see Config.
	ErrPointNotInSubgroup = errors.New("bls12381: point not in subgroup")

	// ErrInvalidLength is returned when an input buffer's length does
	// not match the shape an operation requires.
	ErrInvalidLength = errors.New("bls12381: invalid input length")

	// ErrEmptyInput exists for parity with spec.md §6.2's EmptyInput
	// error code but is not currently returned anywhere: the MSM and
	// pairing Run methods reject zero-length input as ErrInvalidLength
	// instead (EmptyInput is a degenerate case of "wrong length"), the
	// same way original_source/src/eip2537.c declares EIP2537_EMPTY_INPUT
	// in its error enum without any call site ever returning it.
	ErrEmptyInput = errors.New("bls12381: empty input")
)
