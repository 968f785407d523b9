package bls12381

import (
	ecc "github.com/ethereum/go-ethereum/crypto/bls12381"
	"github.com/holiman/uint256"
)

// G2Point is an affine or Jacobian BLS12-381 G2 point (over the
// quadratic twist), as produced by the adapter library. Callers should
// treat it as opaque.
type G2Point = *ecc.PointG2

var g2 = newGroupG2()

// DecodeG2 reads a 256-byte encoded G2 point: x (128-byte Fp2) then y
// (128-byte Fp2), per spec.md §4.1/§6.1. Both-zero coordinates decode
// to the point at infinity. subgroupCheck gates the additional
// prime-order subgroup membership test (see DecodeG1).
func DecodeG2(data []byte, subgroupCheck bool) (G2Point, error) {
	if len(data) != G2Size {
		return nil, ErrInvalidLength
	}
	x, err := decodeFp2(data[:Fp2Size])
	if err != nil {
		return nil, err
	}
	y, err := decodeFp2(data[Fp2Size:])
	if err != nil {
		return nil, err
	}
	if x.isZero() && y.isZero() {
		return g2.Zero(), nil
	}
	raw := make([]byte, 4*fpRawSize)
	copy(raw[0*fpRawSize:], x.c0.rawOrZero())
	copy(raw[1*fpRawSize:], x.c1.rawOrZero())
	copy(raw[2*fpRawSize:], y.c0.rawOrZero())
	copy(raw[3*fpRawSize:], y.c1.rawOrZero())
	p, err := g2.FromRaw(raw)
	if err != nil {
		return nil, ErrPointNotOnCurve
	}
	if subgroupCheck && !g2.InCorrectSubgroup(p) {
		return nil, ErrPointNotInSubgroup
	}
	return p, nil
}

// EncodeG2 writes a G2 point as 256 bytes, the point at infinity as
// all-zero.
func EncodeG2(p G2Point) []byte {
	if g2.IsZero(p) {
		return make([]byte, G2Size)
	}
	raw := g2.ToRaw(p)
	out := make([]byte, G2Size)
	copy(out[:Fp2Size], encodeFp2(raw[0*fpRawSize:1*fpRawSize], raw[1*fpRawSize:2*fpRawSize]))
	copy(out[Fp2Size:], encodeFp2(raw[2*fpRawSize:3*fpRawSize], raw[3*fpRawSize:4*fpRawSize]))
	return out
}

// MapFp2ToG2 implements the map_fp2_to_g2 precompile's curve mapping
// (spec.md §4.5): it decodes a 128-byte Fp2 element the same way
// DecodeG2 decodes a coordinate, then hands it to the adapter
// library's MapToCurve, which performs the RFC 9380 SSWU map over
// Fp2, the isogeny to the twist proper, and cofactor clearing.
func MapFp2ToG2(data []byte) (G2Point, error) {
	if len(data) != Fp2Size {
		return nil, ErrInvalidLength
	}
	u, err := decodeFp2(data)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, 2*fpRawSize)
	copy(raw[:fpRawSize], u.c0.rawOrZero())
	copy(raw[fpRawSize:], u.c1.rawOrZero())
	p, err := g2.MapToCurve(raw)
	if err != nil {
		panic("bls12381: MapToCurve(G2) rejected a well-formed field element: " + err.Error())
	}
	return p, nil
}

// AddG2 computes a + b.
func AddG2(a, b G2Point) G2Point {
	return g2.Add(g2.Zero(), a, b)
}

// MulG2 computes scalar * p. scalar is an unreduced 256-bit value (see
// MulG1).
func MulG2(p G2Point, scalar *uint256.Int) G2Point {
	return g2.MulScalar(g2.Zero(), p, scalar.ToBig())
}

// MSMG2 computes a multi-scalar multiplication over G2, dispatching
// per spec.md §7 (see MSM).
func MSMG2(bases []G2Point, scalars []*uint256.Int) G2Point {
	return MSM[G2Point](g2, bases, scalars)
}
