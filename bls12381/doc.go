// Package bls12381 implements the wire codec, group adapter and
// multi-scalar-multiplication strategies behind the EIP-2537 BLS12-381
// precompiles.
//
// The actual field and curve arithmetic is delegated to
// github.com/ethereum/go-ethereum/crypto/bls12381 (go-ethereum's own
// vendored fork of kilic/bls12-381, the same library its mainnet
// precompiles run on). This package owns everything EIP-2537 adds on
// top of that library: the padded big-endian encoding, the naive and
// Bos-Coster multi-scalar-multiplication strategies, and the error
// taxonomy the precompile layer returns.
package bls12381
