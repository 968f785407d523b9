package bls12381

import (
	"math/big"

	ecc "github.com/ethereum/go-ethereum/crypto/bls12381"
)

// curveGroup is the "Curve Adapter" of spec.md §4.2: a thin, uniform
// wrapper over the external BLS12-381 library that hides the naming
// differences between go-ethereum/crypto/bls12381's G1 and G2 APIs
// (G1.MulScalar takes a *big.Int directly; G2 only exposes that as
// MulScalarBig, reserving MulScalar for its Fr-scalar fast path) behind
// one interface, so the naive and Bos-Coster MSM implementations
// (msm.go) are written once and instantiated for both groups.
type curveGroup[P any] interface {
	Zero() P
	IsZero(p P) bool
	Add(dst, a, b P) P
	MulScalar(dst, p P, e *big.Int) P
	Affine(p P) P
	IsOnCurve(p P) bool
	InCorrectSubgroup(p P) bool
	FromRaw(raw []byte) (P, error) // tightly packed x||y, no EIP-2537 padding
	ToRaw(p P) []byte
	MapToCurve(raw []byte) (P, error)
}

// groupG1 adapts github.com/ethereum/go-ethereum/crypto/bls12381's G1
// group to curveGroup[*ecc.PointG1].
type groupG1 struct{ g *ecc.G1 }

func newGroupG1() groupG1 { return groupG1{g: ecc.NewG1()} }

func (g groupG1) Zero() *ecc.PointG1                     { return g.g.Zero() }
func (g groupG1) IsZero(p *ecc.PointG1) bool              { return g.g.IsZero(p) }
func (g groupG1) Add(dst, a, b *ecc.PointG1) *ecc.PointG1 { return g.g.Add(dst, a, b) }
func (g groupG1) MulScalar(dst, p *ecc.PointG1, e *big.Int) *ecc.PointG1 {
	return g.g.MulScalar(dst, p, e)
}
func (g groupG1) Affine(p *ecc.PointG1) *ecc.PointG1      { return g.g.Affine(p) }
func (g groupG1) IsOnCurve(p *ecc.PointG1) bool           { return g.g.IsOnCurve(p) }
func (g groupG1) InCorrectSubgroup(p *ecc.PointG1) bool   { return g.g.InCorrectSubgroup(p) }
func (g groupG1) FromRaw(raw []byte) (*ecc.PointG1, error) { return g.g.FromBytes(raw) }
func (g groupG1) ToRaw(p *ecc.PointG1) []byte              { return g.g.ToBytes(p) }
func (g groupG1) MapToCurve(raw []byte) (*ecc.PointG1, error) {
	return g.g.MapToCurve(raw)
}

// groupG2 adapts go-ethereum/crypto/bls12381's G2 group to
// curveGroup[*ecc.PointG2].
type groupG2 struct{ g *ecc.G2 }

func newGroupG2() groupG2 { return groupG2{g: ecc.NewG2()} }

func (g groupG2) Zero() *ecc.PointG2                     { return g.g.Zero() }
func (g groupG2) IsZero(p *ecc.PointG2) bool              { return g.g.IsZero(p) }
func (g groupG2) Add(dst, a, b *ecc.PointG2) *ecc.PointG2 { return g.g.Add(dst, a, b) }
func (g groupG2) MulScalar(dst, p *ecc.PointG2, e *big.Int) *ecc.PointG2 {
	return g.g.MulScalarBig(dst, p, e)
}
func (g groupG2) Affine(p *ecc.PointG2) *ecc.PointG2      { return g.g.Affine(p) }
func (g groupG2) IsOnCurve(p *ecc.PointG2) bool           { return g.g.IsOnCurve(p) }
func (g groupG2) InCorrectSubgroup(p *ecc.PointG2) bool   { return g.g.InCorrectSubgroup(p) }
func (g groupG2) FromRaw(raw []byte) (*ecc.PointG2, error) { return g.g.FromBytes(raw) }
func (g groupG2) ToRaw(p *ecc.PointG2) []byte              { return g.g.ToBytes(p) }
func (g groupG2) MapToCurve(raw []byte) (*ecc.PointG2, error) {
	return g.g.MapToCurve(raw)
}
