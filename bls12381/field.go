package bls12381

import (
	"math/big"

	"github.com/holiman/uint256"
)

// modulus is the BLS12-381 base field modulus p, per spec.md §3.
//
// Grounded on the teacher's crypto/bls12381_fp.go blsP constant; kept
// here (rather than pulled from the adapter library, which does not
// export it) since the codec needs it for the range check decode_fp
// performs before any point ever reaches the curve library.
var modulus, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

// subgroupOrder is the BLS12-381 prime subgroup order r, per spec.md
// §3. Grounded on the teacher's crypto/bls12381.go bls12Order constant;
// exposed via GroupOrder for callers working with scalars modulo r
// (e.g. constructing a negated scalar for a pairing bilinearity check).
var subgroupOrder, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// GroupOrder returns the BLS12-381 prime subgroup order r as a
// uint256.Int. Precompile scalars themselves are never reduced modulo
// r (spec.md §3); this is exposed for callers that need to compute
// modulo r directly, such as a pairing bilinearity check.
func GroupOrder() *uint256.Int {
	return new(uint256.Int).SetBytes(subgroupOrder.Bytes())
}

// fieldElement is the three-valued result of decoding an Fp: whether
// it is the additive identity is needed up front by the G1/G2 decoders
// to recognise an infinity encoding without a second pass (spec.md §4.1).
type fieldElement struct {
	raw    []byte // 48-byte big-endian magnitude, unpadded; nil if zero
	isZero bool
}

// decodeFp reads a 64-byte padded field element: the top 16 bytes must
// be zero and the 48-byte big-endian magnitude must be < p.
func decodeFp(data []byte) (fieldElement, error) {
	if len(data) != FpSize {
		return fieldElement{}, ErrInvalidElement
	}
	for _, b := range data[:FpSize-fpRawSize] {
		if b != 0 {
			return fieldElement{}, ErrInvalidElement
		}
	}
	raw := data[FpSize-fpRawSize:]
	v := new(big.Int).SetBytes(raw)
	if v.Cmp(modulus) >= 0 {
		return fieldElement{}, ErrInvalidElement
	}
	if v.Sign() == 0 {
		return fieldElement{isZero: true}, nil
	}
	return fieldElement{raw: raw}, nil
}

// encodeFp writes a 48-byte unpadded big-endian magnitude as a 64-byte
// zero-padded field element.
func encodeFp(raw []byte) []byte {
	out := make([]byte, FpSize)
	copy(out[FpSize-len(raw):], raw)
	return out
}

// fp2Element is the Fp2 analogue of fieldElement: c0 then c1, per
// spec.md §3 ("Fp2 wire form is (c0, c1) as Fp ‖ Fp").
type fp2Element struct {
	c0, c1 fieldElement
}

func (e fp2Element) isZero() bool {
	return e.c0.isZero && e.c1.isZero
}

// decodeFp2 reads a 128-byte encoded Fp2 element: c0 (64 bytes) then
// c1 (64 bytes).
func decodeFp2(data []byte) (fp2Element, error) {
	if len(data) != Fp2Size {
		return fp2Element{}, ErrInvalidElement
	}
	c0, err := decodeFp(data[:FpSize])
	if err != nil {
		return fp2Element{}, err
	}
	c1, err := decodeFp(data[FpSize:])
	if err != nil {
		return fp2Element{}, err
	}
	return fp2Element{c0: c0, c1: c1}, nil
}

// rawOrZero returns the 48-byte unpadded magnitude of a field element,
// substituting 48 zero bytes for the zero value (decodeFp does not
// retain a raw buffer for zero, since the point decoders only need to
// know it was zero).
func (f fieldElement) rawOrZero() []byte {
	if f.isZero {
		return make([]byte, fpRawSize)
	}
	return f.raw
}

// encodeFp2 writes an Fp2 element as 128 bytes: c0 then c1.
func encodeFp2(c0, c1 []byte) []byte {
	out := make([]byte, Fp2Size)
	copy(out[:FpSize], encodeFp(c0))
	copy(out[FpSize:], encodeFp(c1))
	return out
}
