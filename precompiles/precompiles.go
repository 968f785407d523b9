// Package precompiles exposes the nine EIP-2537 BLS12-381 precompiled
// contracts as PrecompiledContract implementations in the shape used
// throughout the go-ethereum precompile registry (core/vm/precompiles.go):
// a RequiredGas/Run pair per contract, keyed by address in a registry map.
package precompiles

import (
	"github.com/eth2030/bls2537/bls12381"
	"github.com/eth2030/bls2537/internal/bslog"
	"github.com/holiman/uint256"
)

// PrecompiledContract mirrors go-ethereum's core/vm.PrecompiledContract
// interface, which every precompile in this package implements.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

var log = bslog.Module("precompiles")

// decodeScalar reads a 32-byte big-endian scalar. It is never reduced
// modulo the group order (spec.md §3), so no range check applies.
func decodeScalar(data []byte) *uint256.Int {
	return new(uint256.Int).SetBytes32(data)
}

// --- g1_add (0x0b) ---

type g1Add struct{ cfg Config }

func (c g1Add) RequiredGas([]byte) uint64 { return gasG1Add }

func (c g1Add) Run(input []byte) ([]byte, error) {
	const size = 2 * bls12381.G1Size
	if len(input) != size {
		return nil, bls12381.ErrInvalidLength
	}
	a, err := bls12381.DecodeG1(input[:bls12381.G1Size], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	b, err := bls12381.DecodeG1(input[bls12381.G1Size:], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	return bls12381.EncodeG1(bls12381.AddG1(a, b)), nil
}

// --- g1_mul (0x0c) ---

type g1Mul struct{ cfg Config }

func (c g1Mul) RequiredGas([]byte) uint64 { return gasG1Mul }

func (c g1Mul) Run(input []byte) ([]byte, error) {
	const size = bls12381.G1Size + bls12381.ScalarSize
	if len(input) != size {
		return nil, bls12381.ErrInvalidLength
	}
	p, err := bls12381.DecodeG1(input[:bls12381.G1Size], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	scalar := decodeScalar(input[bls12381.G1Size:])
	return bls12381.EncodeG1(bls12381.MulG1(p, scalar)), nil
}

// --- g1_multiexp (0x0d) ---

type g1MSM struct{ cfg Config }

const g1PairSize = bls12381.G1Size + bls12381.ScalarSize

func (c g1MSM) RequiredGas(input []byte) uint64 {
	k := uint64(len(input) / g1PairSize)
	return msmGas(k, gasG1Mul)
}

func (c g1MSM) Run(input []byte) ([]byte, error) {
	if len(input) == 0 || len(input)%g1PairSize != 0 {
		return nil, bls12381.ErrInvalidLength
	}
	k := len(input) / g1PairSize
	if k == 1 {
		return g1Mul(c).Run(input)
	}
	bases := make([]bls12381.G1Point, k)
	scalars := make([]*uint256.Int, k)
	for i := 0; i < k; i++ {
		off := i * g1PairSize
		p, err := bls12381.DecodeG1(input[off:off+bls12381.G1Size], c.cfg.RequireSubgroupChecks)
		if err != nil {
			return nil, err
		}
		bases[i] = p
		scalars[i] = decodeScalar(input[off+bls12381.G1Size : off+g1PairSize])
	}
	log.Debug("g1 msm dispatch", "pairs", k, "strategy", msmStrategy(k))
	return bls12381.EncodeG1(bls12381.MSMG1(bases, scalars)), nil
}

// --- g2_add (0x0e) ---

type g2Add struct{ cfg Config }

func (c g2Add) RequiredGas([]byte) uint64 { return gasG2Add }

func (c g2Add) Run(input []byte) ([]byte, error) {
	const size = 2 * bls12381.G2Size
	if len(input) != size {
		return nil, bls12381.ErrInvalidLength
	}
	a, err := bls12381.DecodeG2(input[:bls12381.G2Size], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	b, err := bls12381.DecodeG2(input[bls12381.G2Size:], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	return bls12381.EncodeG2(bls12381.AddG2(a, b)), nil
}

// --- g2_mul (0x0f) ---

type g2Mul struct{ cfg Config }

func (c g2Mul) RequiredGas([]byte) uint64 { return gasG2Mul }

func (c g2Mul) Run(input []byte) ([]byte, error) {
	const size = bls12381.G2Size + bls12381.ScalarSize
	if len(input) != size {
		return nil, bls12381.ErrInvalidLength
	}
	p, err := bls12381.DecodeG2(input[:bls12381.G2Size], c.cfg.RequireSubgroupChecks)
	if err != nil {
		return nil, err
	}
	scalar := decodeScalar(input[bls12381.G2Size:])
	return bls12381.EncodeG2(bls12381.MulG2(p, scalar)), nil
}

// --- g2_multiexp (0x10) ---

type g2MSM struct{ cfg Config }

const g2PairSize = bls12381.G2Size + bls12381.ScalarSize

func (c g2MSM) RequiredGas(input []byte) uint64 {
	k := uint64(len(input) / g2PairSize)
	return msmGas(k, gasG2Mul)
}

func (c g2MSM) Run(input []byte) ([]byte, error) {
	if len(input) == 0 || len(input)%g2PairSize != 0 {
		return nil, bls12381.ErrInvalidLength
	}
	k := len(input) / g2PairSize
	if k == 1 {
		return g2Mul(c).Run(input)
	}
	bases := make([]bls12381.G2Point, k)
	scalars := make([]*uint256.Int, k)
	for i := 0; i < k; i++ {
		off := i * g2PairSize
		p, err := bls12381.DecodeG2(input[off:off+bls12381.G2Size], c.cfg.RequireSubgroupChecks)
		if err != nil {
			return nil, err
		}
		bases[i] = p
		scalars[i] = decodeScalar(input[off+bls12381.G2Size : off+g2PairSize])
	}
	log.Debug("g2 msm dispatch", "pairs", k, "strategy", msmStrategy(k))
	return bls12381.EncodeG2(bls12381.MSMG2(bases, scalars)), nil
}

// --- pairing (0x11) ---

type pairing struct{}

const pairSize = bls12381.G1Size + bls12381.G2Size

func (c pairing) RequiredGas(input []byte) uint64 {
	return pairingGas(uint64(len(input) / pairSize))
}

func (c pairing) Run(input []byte) ([]byte, error) {
	if len(input) == 0 || len(input)%pairSize != 0 {
		return nil, bls12381.ErrInvalidLength
	}
	k := len(input) / pairSize
	g1s := make([]bls12381.G1Point, k)
	g2s := make([]bls12381.G2Point, k)
	for i := 0; i < k; i++ {
		off := i * pairSize
		a, err := bls12381.DecodeG1(input[off:off+bls12381.G1Size], true)
		if err != nil {
			return nil, err
		}
		b, err := bls12381.DecodeG2(input[off+bls12381.G1Size:off+pairSize], true)
		if err != nil {
			return nil, err
		}
		g1s[i] = a
		g2s[i] = b
	}
	out := make([]byte, 32)
	if bls12381.PairingCheck(g1s, g2s) {
		out[31] = 1
	}
	return out, nil
}

// --- map_fp_to_g1 (0x12) ---

type mapFpToG1 struct{}

func (c mapFpToG1) RequiredGas([]byte) uint64 { return gasMapFpToG1 }

func (c mapFpToG1) Run(input []byte) ([]byte, error) {
	p, err := bls12381.MapFpToG1(input)
	if err != nil {
		return nil, err
	}
	return bls12381.EncodeG1(p), nil
}

// --- map_fp2_to_g2 (0x13) ---

type mapFp2ToG2 struct{}

func (c mapFp2ToG2) RequiredGas([]byte) uint64 { return gasMapFp2ToG2 }

func (c mapFp2ToG2) Run(input []byte) ([]byte, error) {
	p, err := bls12381.MapFp2ToG2(input)
	if err != nil {
		return nil, err
	}
	return bls12381.EncodeG2(p), nil
}

func msmStrategy(k int) string {
	switch {
	case k == 1:
		return "mul"
	case k <= 4:
		return "naive"
	default:
		return "bos-coster"
	}
}
