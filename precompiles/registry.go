package precompiles

import "github.com/ethereum/go-ethereum/common"

// Addresses of the nine EIP-2537 precompiles, as activated on Ethereum
// mainnet (Pectra).
var (
	G1AddAddress       = common.BytesToAddress([]byte{0x0b})
	G1MulAddress       = common.BytesToAddress([]byte{0x0c})
	G1MultiExpAddress  = common.BytesToAddress([]byte{0x0d})
	G2AddAddress       = common.BytesToAddress([]byte{0x0e})
	G2MulAddress       = common.BytesToAddress([]byte{0x0f})
	G2MultiExpAddress  = common.BytesToAddress([]byte{0x10})
	PairingAddress     = common.BytesToAddress([]byte{0x11})
	MapFpToG1Address   = common.BytesToAddress([]byte{0x12})
	MapFp2ToG2Address  = common.BytesToAddress([]byte{0x13})
)

// New builds the full set of BLS12-381 precompiles keyed by address,
// mirroring go-ethereum's PrecompiledContractsCancun map shape
// (core/vm/precompiles.go).
func New(cfg Config) map[common.Address]PrecompiledContract {
	return map[common.Address]PrecompiledContract{
		G1AddAddress:      g1Add{cfg: cfg},
		G1MulAddress:      g1Mul{cfg: cfg},
		G1MultiExpAddress: g1MSM{cfg: cfg},
		G2AddAddress:      g2Add{cfg: cfg},
		G2MulAddress:      g2Mul{cfg: cfg},
		G2MultiExpAddress: g2MSM{cfg: cfg},
		PairingAddress:    pairing{},
		MapFpToG1Address:  mapFpToG1{},
		MapFp2ToG2Address: mapFp2ToG2{},
	}
}
