package precompiles

// Fixed gas costs per EIP-2537, verbatim from
// original_source/src/eip2537.c's BLS12_*_GAS constants. The teacher's
// core/vm/precompiles_bls.go stub carries placeholder values (e.g.
// G1ADD=500, G2ADD=800) left over from an earlier EIP draft; this repo
// uses the values actually deployed on Ethereum mainnet instead.
const (
	gasG1Add         = 600
	gasG1Mul         = 12000
	gasG2Add         = 4500
	gasG2Mul         = 55000
	gasPairingBase   = 115000
	gasPairingPerPair = 23000
	gasMapFpToG1     = 5500
	gasMapFp2ToG2    = 110000

	msmMultiplier = 1000
)

// msmDiscount is EIP-2537's multi-scalar-multiplication discount table,
// indexed by (pair count - 1), clamped to the table's last entry beyond
// 128 pairs. Verbatim from original_source/src/eip2537.c's
// BLS12_MULTIEXP_DISCOUNT (the teacher's own msmDiscount in
// core/vm/precompiles_bls.go uses different, placeholder numbers).
var msmDiscount = [128]uint64{
	1200, 888, 764, 641, 594, 547, 500, 453,
	438, 423, 408, 394, 379, 364, 349, 334,
	330, 326, 322, 318, 314, 310, 306, 302,
	298, 294, 289, 285, 281, 277, 273, 269,
	268, 266, 265, 263, 262, 260, 259, 257,
	256, 254, 253, 251, 250, 248, 247, 245,
	244, 242, 241, 239, 238, 236, 235, 233,
	232, 231, 229, 228, 226, 225, 223, 222,
	221, 220, 219, 219, 218, 217, 216, 216,
	215, 214, 213, 213, 212, 211, 211, 210,
	209, 208, 208, 207, 206, 205, 205, 204,
	203, 202, 202, 201, 200, 199, 199, 198,
	197, 196, 196, 195, 194, 193, 193, 192,
	191, 191, 190, 189, 188, 188, 187, 186,
	185, 185, 184, 183, 182, 182, 181, 180,
	179, 179, 178, 177, 176, 176, 175, 174,
}

// msmGas computes MSM gas as floor(k * mulGas * discount[min(k,128)-1] /
// 1000), per spec.md §4.5. k is the pair count; mulGas is the
// corresponding single-scalar-mul gas (gasG1Mul or gasG2Mul).
func msmGas(k uint64, mulGas uint64) uint64 {
	if k == 0 {
		return 0
	}
	idx := k - 1
	if idx >= uint64(len(msmDiscount)) {
		idx = uint64(len(msmDiscount)) - 1
	}
	return (k * mulGas * msmDiscount[idx]) / msmMultiplier
}

// pairingGas computes gas for a pairing check over k pairs.
func pairingGas(k uint64) uint64 {
	if k == 0 {
		return 0
	}
	return k*gasPairingPerPair + gasPairingBase
}
