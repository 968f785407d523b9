package bls12381

import ecc "github.com/ethereum/go-ethereum/crypto/bls12381"

// PairingCheck evaluates the product of pairings e(g1s[0], g2s[0]) *
// e(g1s[1], g2s[1]) * ... and reports whether it equals the identity
// element of GT, per spec.md §4.4/§4.5. Unlike every other precompile,
// pairing always requires subgroup membership for both the G1 and G2
// operand of each pair (spec.md §9): a point merely on the curve (or
// its twist) but outside the prime-order subgroup can forge a pairing
// result, so DecodeG1/DecodeG2 must be called with subgroupCheck=true
// before their results reach here.
//
// An empty pair list's product is the empty product, the identity, so
// the pairing check on zero pairs succeeds — callers (precompiles
// package) reject zero-length input before decoding, per EIP-2537's
// "input is empty" error case.
func PairingCheck(g1s []G1Point, g2s []G2Point) bool {
	e := ecc.NewPairingEngine()
	for i := range g1s {
		e.AddPair(g1s[i], g2s[i])
	}
	return e.Check()
}
