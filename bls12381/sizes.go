package bls12381

// Wire-encoding sizes, per EIP-2537 (spec.md §3, §6.1).
const (
	FpSize     = 64  // 16 zero pad bytes + 48-byte big-endian magnitude
	Fp2Size    = 2 * FpSize
	G1Size     = 2 * FpSize  // x || y
	G2Size     = 2 * Fp2Size // x || y, each an Fp2
	ScalarSize = 32          // big-endian, unreduced 256-bit scalar

	g1PairSize = G1Size + ScalarSize
	g2PairSize = G2Size + ScalarSize
	pairSize   = G1Size + G2Size

	fpRawSize = 48 // unpadded big-endian magnitude, as the adapter library expects it
)
