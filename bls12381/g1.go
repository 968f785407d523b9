package bls12381

import (
	ecc "github.com/ethereum/go-ethereum/crypto/bls12381"
	"github.com/holiman/uint256"
)

// G1Point is an affine or Jacobian BLS12-381 G1 point, as produced by
// the adapter library. Callers should treat it as opaque.
type G1Point = *ecc.PointG1

var g1 = newGroupG1()

// DecodeG1 reads a 128-byte encoded G1 point: x (64 bytes) then y (64
// bytes), per spec.md §4.1/§6.1. Both-zero coordinates decode to the
// point at infinity; a lone zero coordinate is neither infinity nor
// (in general) on-curve and falls through to the on-curve check like
// any other candidate point. subgroupCheck gates whether membership in
// the prime-order subgroup is additionally required — false for the
// arithmetic precompiles (g1_add/g1_mul/g1_multiexp), true for pairing,
// per EIP-2537's original behaviour (spec.md §9, §4.5).
func DecodeG1(data []byte, subgroupCheck bool) (G1Point, error) {
	if len(data) != G1Size {
		return nil, ErrInvalidLength
	}
	x, err := decodeFp(data[:FpSize])
	if err != nil {
		return nil, err
	}
	y, err := decodeFp(data[FpSize:])
	if err != nil {
		return nil, err
	}
	if x.isZero && y.isZero {
		return g1.Zero(), nil
	}
	raw := make([]byte, 2*fpRawSize)
	copy(raw[:fpRawSize], x.rawOrZero())
	copy(raw[fpRawSize:], y.rawOrZero())
	p, err := g1.FromRaw(raw)
	if err != nil {
		return nil, ErrPointNotOnCurve
	}
	if subgroupCheck && !g1.InCorrectSubgroup(p) {
		return nil, ErrPointNotInSubgroup
	}
	return p, nil
}

// EncodeG1 writes a G1 point as 128 bytes, the point at infinity as
// all-zero.
func EncodeG1(p G1Point) []byte {
	if g1.IsZero(p) {
		return make([]byte, G1Size)
	}
	raw := g1.ToRaw(p)
	return encodeFp2(raw[:fpRawSize], raw[fpRawSize:])
}

// MapFpToG1 implements the map_fp_to_g1 precompile's curve mapping
// (spec.md §4.5): it decodes a 64-byte padded field element the same
// way DecodeG1 decodes a coordinate, then hands it to the adapter
// library's MapToCurve, which performs the RFC 9380 simplified-SWU
// map, the 11-isogeny to the curve proper, and cofactor clearing,
// landing directly in the prime-order subgroup.
func MapFpToG1(data []byte) (G1Point, error) {
	if len(data) != FpSize {
		return nil, ErrInvalidLength
	}
	u, err := decodeFp(data)
	if err != nil {
		return nil, err
	}
	p, err := g1.MapToCurve(u.rawOrZero())
	if err != nil {
		// The adapter only rejects malformed byte lengths; rawOrZero()
		// always returns exactly fpRawSize bytes, so this is unreachable.
		panic("bls12381: MapToCurve(G1) rejected a well-formed field element: " + err.Error())
	}
	return p, nil
}

// AddG1 computes a + b.
func AddG1(a, b G1Point) G1Point {
	return g1.Add(g1.Zero(), a, b)
}

// MulG1 computes scalar * p. scalar is an unreduced 256-bit value, per
// spec.md §3 ("Scalar values are not required to be reduced modulo the
// group order").
func MulG1(p G1Point, scalar *uint256.Int) G1Point {
	return g1.MulScalar(g1.Zero(), p, scalar.ToBig())
}

// MSMG1 computes a multi-scalar multiplication over G1, dispatching
// per spec.md §7 (see MSM).
func MSMG1(bases []G1Point, scalars []*uint256.Int) G1Point {
	return MSM[G1Point](g1, bases, scalars)
}
