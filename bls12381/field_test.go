package bls12381

import "testing"

func TestDecodeFpZero(t *testing.T) {
	v, err := decodeFp(make([]byte, FpSize))
	if err != nil {
		t.Fatalf("decodeFp(0) error: %v", err)
	}
	if !v.isZero {
		t.Error("decodeFp(0) should report isZero")
	}
}

func TestDecodeFpOne(t *testing.T) {
	input := make([]byte, FpSize)
	input[FpSize-1] = 1
	v, err := decodeFp(input)
	if err != nil {
		t.Fatalf("decodeFp(1) error: %v", err)
	}
	if v.isZero {
		t.Error("decodeFp(1) should not report isZero")
	}
	if len(v.raw) != fpRawSize || v.raw[fpRawSize-1] != 1 {
		t.Errorf("decodeFp(1) raw = %x, want last byte 1", v.raw)
	}
}

func TestDecodeFpInvalidTooLarge(t *testing.T) {
	input := make([]byte, FpSize)
	pBytes := modulus.Bytes()
	copy(input[FpSize-len(pBytes):], pBytes)
	if _, err := decodeFp(input); err != ErrInvalidElement {
		t.Errorf("decodeFp(p) error = %v, want ErrInvalidElement", err)
	}
}

func TestDecodeFpInvalidPadding(t *testing.T) {
	input := make([]byte, FpSize)
	input[0] = 1
	if _, err := decodeFp(input); err != ErrInvalidElement {
		t.Errorf("decodeFp(bad padding) error = %v, want ErrInvalidElement", err)
	}
}

func TestDecodeFpWrongLength(t *testing.T) {
	if _, err := decodeFp(make([]byte, FpSize-1)); err != ErrInvalidElement {
		t.Errorf("decodeFp(short) error = %v, want ErrInvalidElement", err)
	}
}

func TestEncodeFpRoundTrip(t *testing.T) {
	input := make([]byte, FpSize)
	input[FpSize-1] = 0x2a
	v, err := decodeFp(input)
	if err != nil {
		t.Fatalf("decodeFp error: %v", err)
	}
	out := encodeFp(v.rawOrZero())
	if string(out) != string(input) {
		t.Errorf("encodeFp round-trip = %x, want %x", out, input)
	}
}

func TestDecodeFp2OrderingIsC0ThenC1(t *testing.T) {
	// c0 = 1, c1 = 2, laid out as spec.md §3 specifies: c0 encoding then
	// c1 encoding (not the reverse "imaginary part first" ordering some
	// other BLS12-381 codecs use).
	input := make([]byte, Fp2Size)
	input[FpSize-1] = 1
	input[Fp2Size-1] = 2
	v, err := decodeFp2(input)
	if err != nil {
		t.Fatalf("decodeFp2 error: %v", err)
	}
	if v.c0.raw[fpRawSize-1] != 1 {
		t.Errorf("c0 = %x, want low byte 1", v.c0.raw)
	}
	if v.c1.raw[fpRawSize-1] != 2 {
		t.Errorf("c1 = %x, want low byte 2", v.c1.raw)
	}
}

func TestFp2ZeroIsInfinityCoordinate(t *testing.T) {
	v, err := decodeFp2(make([]byte, Fp2Size))
	if err != nil {
		t.Fatalf("decodeFp2(0) error: %v", err)
	}
	if !v.isZero() {
		t.Error("decodeFp2(0) should report isZero")
	}
}
