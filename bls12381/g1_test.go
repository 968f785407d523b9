package bls12381

import "testing"

func TestDecodeEncodeG1Infinity(t *testing.T) {
	p, err := DecodeG1(make([]byte, G1Size), false)
	if err != nil {
		t.Fatalf("DecodeG1(inf) error: %v", err)
	}
	if !g1.IsZero(p) {
		t.Error("expected point at infinity")
	}
	encoded := EncodeG1(p)
	if len(encoded) != G1Size {
		t.Fatalf("EncodeG1 length = %d, want %d", len(encoded), G1Size)
	}
	for _, b := range encoded {
		if b != 0 {
			t.Fatal("encoded infinity should be all-zero")
		}
	}
}

func TestDecodeEncodeG1RoundTrip(t *testing.T) {
	u := make([]byte, FpSize)
	u[FpSize-1] = 7
	p, err := MapFpToG1(u)
	if err != nil {
		t.Fatalf("MapFpToG1 error: %v", err)
	}

	encoded := EncodeG1(p)
	if len(encoded) != G1Size {
		t.Fatalf("EncodeG1 length = %d, want %d", len(encoded), G1Size)
	}

	decoded, err := DecodeG1(encoded, true)
	if err != nil {
		t.Fatalf("DecodeG1 error: %v", err)
	}
	if string(EncodeG1(decoded)) != string(encoded) {
		t.Error("round-trip through DecodeG1/EncodeG1 changed the point")
	}
}

func TestDecodeG1WrongLength(t *testing.T) {
	if _, err := DecodeG1(make([]byte, G1Size-1), false); err != ErrInvalidLength {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeG1NotOnCurve(t *testing.T) {
	data := make([]byte, G1Size)
	data[FpSize-1] = 1 // x = 1, y = 0: not on curve for almost any curve
	if _, err := DecodeG1(data, false); err != ErrPointNotOnCurve {
		t.Errorf("error = %v, want ErrPointNotOnCurve", err)
	}
}

func TestMapFpToG1Deterministic(t *testing.T) {
	u := make([]byte, FpSize)
	u[FpSize-1] = 42
	p1, err := MapFpToG1(u)
	if err != nil {
		t.Fatalf("MapFpToG1 error: %v", err)
	}
	p2, err := MapFpToG1(u)
	if err != nil {
		t.Fatalf("MapFpToG1 error: %v", err)
	}
	if string(EncodeG1(p1)) != string(EncodeG1(p2)) {
		t.Error("MapFpToG1 is not deterministic for identical input")
	}
	if !g1.InCorrectSubgroup(p1) {
		t.Error("MapFpToG1 result should already be in the correct subgroup")
	}
}
