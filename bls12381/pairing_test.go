package bls12381

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestPairingCheckEmptyIsIdentity(t *testing.T) {
	if !PairingCheck(nil, nil) {
		t.Error("pairing check over zero pairs should be the empty product (identity)")
	}
}

// TestPairingCheckBilinearity turns e(a*G, b*H) == e(G, (a*b)*H) into a
// single PairingCheck call by pairing a*G against b*H and G against the
// negation of (a*b)*H: the product of the two is the identity iff
// bilinearity holds, which is the only question the pairing precompile
// itself ever answers (spec.md §4.4).
func TestPairingCheckBilinearity(t *testing.T) {
	u1 := make([]byte, FpSize)
	u1[FpSize-1] = 5
	g, err := MapFpToG1(u1)
	if err != nil {
		t.Fatalf("MapFpToG1: %v", err)
	}

	u2 := make([]byte, Fp2Size)
	u2[Fp2Size-1] = 9
	h, err := MapFp2ToG2(u2)
	if err != nil {
		t.Fatalf("MapFp2ToG2: %v", err)
	}

	a := uint256.NewInt(7)
	b := uint256.NewInt(11)
	ab := new(uint256.Int).Mul(a, b)

	order := GroupOrder()
	abModOrder := new(uint256.Int).Mod(ab, order)
	negAB := new(uint256.Int).Sub(order, abModOrder)

	aG := MulG1(g, a)
	bH := MulG2(h, b)
	negABH := MulG2(h, negAB)

	if !PairingCheck([]G1Point{aG, g}, []G2Point{bH, negABH}) {
		t.Error("e(a*G, b*H) * e(G, -(ab)*H) should be the identity")
	}
}

func TestPairingCheckRejectsUnrelatedPoints(t *testing.T) {
	u1 := make([]byte, FpSize)
	u1[FpSize-1] = 3
	g, err := MapFpToG1(u1)
	if err != nil {
		t.Fatalf("MapFpToG1: %v", err)
	}
	u2 := make([]byte, Fp2Size)
	u2[Fp2Size-1] = 4
	h, err := MapFp2ToG2(u2)
	if err != nil {
		t.Fatalf("MapFp2ToG2: %v", err)
	}
	if PairingCheck([]G1Point{g}, []G2Point{h}) {
		t.Error("single unrelated pairing should not equal the identity")
	}
}
