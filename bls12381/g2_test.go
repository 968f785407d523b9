package bls12381

import "testing"

func TestDecodeEncodeG2Infinity(t *testing.T) {
	p, err := DecodeG2(make([]byte, G2Size), false)
	if err != nil {
		t.Fatalf("DecodeG2(inf) error: %v", err)
	}
	if !g2.IsZero(p) {
		t.Error("expected point at infinity")
	}
	encoded := EncodeG2(p)
	if len(encoded) != G2Size {
		t.Fatalf("EncodeG2 length = %d, want %d", len(encoded), G2Size)
	}
	for _, b := range encoded {
		if b != 0 {
			t.Fatal("encoded infinity should be all-zero")
		}
	}
}

func TestDecodeEncodeG2RoundTrip(t *testing.T) {
	u := make([]byte, Fp2Size)
	u[Fp2Size-1] = 7
	p, err := MapFp2ToG2(u)
	if err != nil {
		t.Fatalf("MapFp2ToG2 error: %v", err)
	}

	encoded := EncodeG2(p)
	if len(encoded) != G2Size {
		t.Fatalf("EncodeG2 length = %d, want %d", len(encoded), G2Size)
	}

	decoded, err := DecodeG2(encoded, true)
	if err != nil {
		t.Fatalf("DecodeG2 error: %v", err)
	}
	if string(EncodeG2(decoded)) != string(encoded) {
		t.Error("round-trip through DecodeG2/EncodeG2 changed the point")
	}
}

func TestDecodeG2WrongLength(t *testing.T) {
	if _, err := DecodeG2(make([]byte, G2Size-1), false); err != ErrInvalidLength {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeG2NotOnCurve(t *testing.T) {
	data := make([]byte, G2Size)
	data[FpSize-1] = 1 // x = (1, 0), y = (0, 0): not on the twist
	if _, err := DecodeG2(data, false); err != ErrPointNotOnCurve {
		t.Errorf("error = %v, want ErrPointNotOnCurve", err)
	}
}

func TestMapFp2ToG2Deterministic(t *testing.T) {
	u := make([]byte, Fp2Size)
	u[Fp2Size-1] = 42
	p1, err := MapFp2ToG2(u)
	if err != nil {
		t.Fatalf("MapFp2ToG2 error: %v", err)
	}
	p2, err := MapFp2ToG2(u)
	if err != nil {
		t.Fatalf("MapFp2ToG2 error: %v", err)
	}
	if string(EncodeG2(p1)) != string(EncodeG2(p2)) {
		t.Error("MapFp2ToG2 is not deterministic for identical input")
	}
	if !g2.InCorrectSubgroup(p1) {
		t.Error("MapFp2ToG2 result should already be in the correct subgroup")
	}
}
