package precompiles

// Config tunes validation behaviour shared by all nine precompiles.
//
// RequireSubgroupChecks controls whether g1_add, g1_mul, g1_multiexp,
// g2_add, g2_mul and g2_multiexp additionally check prime-order subgroup
// membership on every decoded point. EIP-2537 as deployed on Ethereum
// mainnet leaves this Open Question resolved to false: the original_source
// C reference (decode_g1_point/decode_g2_point) performs only an
// on-curve check and explicitly flags the stronger check as a TODO, and
// only bls12_pairing calls the subgroup-membership functions. DefaultConfig
// preserves that mainnet behaviour; callers embedding this module in a
// stricter context (e.g. a test harness validating subgroup-check
// overhead) can opt in.
//
// Pairing always requires subgroup membership on both operands of every
// pair regardless of this setting — a point outside the subgroup can
// forge a pairing result, so that check is not optional there.
type Config struct {
	RequireSubgroupChecks bool
}

// DefaultConfig matches the EIP-2537 behaviour deployed on Ethereum
// mainnet.
func DefaultConfig() Config {
	return Config{RequireSubgroupChecks: false}
}
