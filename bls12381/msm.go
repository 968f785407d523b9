package bls12381

import (
	"container/heap"

	"github.com/holiman/uint256"
)

// bosCosterSkipBits is the Bos-Coster "too far apart to keep subtracting"
// threshold (spec.md §7): once the bit-length gap between the largest and
// second-largest scalar exceeds this, the top term is folded into the
// skipped accumulator via a direct scalar multiplication instead of being
// whittled down one subtraction at a time. A point multiplication costs
// roughly 200x a point addition, so subtracting a scalar more than 2^6
// times smaller is pure waste. Grounded on original_source/src/eip2537.c's
// blst_scalars_max_heapreplace_p1/p2 ("about 200x larger is bad, here we
// use 2^7+ (128) as cutoff").
const bosCosterSkipBits = 6

// msmTerm is one (scalar, base point) pair of a multi-scalar
// multiplication, mutated in place by Bos-Coster as it folds terms
// together (spec.md §3's "mutable scalar, base_index" pair). k is a
// uint256.Int rather than a math/big.Int: scalars are a fixed 256 bits
// and unreduced (spec.md §3), exactly uint256's native representation,
// and BitLen/Cmp/Sub on it avoid math/big's variable-width allocation
// on every heap operation.
type msmTerm[P any] struct {
	k    *uint256.Int
	base P
}

// msmHeap is a max-heap over msmTerm.k, ordered via container/heap.
// Only the root (index 0) and its two children are ever inspected
// directly by Bos-Coster; heap.Fix restores the invariant after the
// root's key changes.
type msmHeap[P any] []msmTerm[P]

func (h msmHeap[P]) Len() int            { return len(h) }
func (h msmHeap[P]) Less(i, j int) bool  { return h[i].k.Cmp(h[j].k) > 0 }
func (h msmHeap[P]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *msmHeap[P]) Push(x any)         { *h = append(*h, x.(msmTerm[P])) }
func (h *msmHeap[P]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MSM computes the multi-scalar multiplication sum(scalars[i] * bases[i])
// using the dispatch strategy of spec.md §7: a lone pair delegates to a
// single scalar multiplication, up to four pairs are summed naively, and
// five or more use Bos-Coster. bases and scalars must be the same length
// and non-empty; callers (the precompiles package) are responsible for
// rejecting empty input before calling MSM.
func MSM[P any](g curveGroup[P], bases []P, scalars []*uint256.Int) P {
	switch {
	case len(bases) == 1:
		return g.MulScalar(g.Zero(), bases[0], scalars[0].ToBig())
	case len(bases) <= 4:
		return naiveMSM(g, bases, scalars)
	default:
		return bosCosterMSM(g, bases, scalars)
	}
}

// naiveMSM sums each base's scalar multiple independently. Used directly
// for small pair counts, where Bos-Coster's heap bookkeeping costs more
// than it saves, and as the correctness oracle naiveMSM/bosCosterMSM tests
// check Bos-Coster against.
func naiveMSM[P any](g curveGroup[P], bases []P, scalars []*uint256.Int) P {
	result := g.Zero()
	for i, base := range bases {
		result = g.Add(result, result, g.MulScalar(g.Zero(), base, scalars[i].ToBig()))
	}
	return result
}

// bosCosterMSM implements the Bos-Coster multi-scalar multiplication
// algorithm, grounded on original_source/src/eip2537.c's
// blst_scalars_max_heapify / blst_scalars_max_heapreplace_p1 /
// blst_scalars_max_heapreplace_p2. Repeatedly takes the two largest
// scalars, subtracts the smaller from the larger, and folds the larger's
// base point into the smaller's — equivalent to replacing (k1, P1), (k2,
// P2) with (k1-k2, P1), (k2, P1+P2) — until one term remains. Terms whose
// scalar bit-length diverges from the runner-up's by more than
// bosCosterSkipBits are instead multiplied out directly and accumulated
// in skipped, since repeated subtraction against a far smaller scalar
// would otherwise take about as many rounds as the ratio between the two
// scalars, i.e. roughly 2^gap rounds for a bit-length gap of gap.
func bosCosterMSM[P any](g curveGroup[P], bases []P, scalars []*uint256.Int) P {
	h := make(msmHeap[P], len(bases))
	for i, base := range bases {
		h[i] = msmTerm[P]{k: scalars[i].Clone(), base: base}
	}
	heap.Init(&h)

	skipped := g.Zero()

	for {
		runnerUp := &h[1]
		if len(h) > 2 && h[2].k.Cmp(h[1].k) > 0 {
			runnerUp = &h[2]
		}
		if runnerUp.k.IsZero() {
			break
		}

		top := &h[0]
		highBits := top.k.BitLen()
		nextHighBits := runnerUp.k.BitLen()

		if highBits-nextHighBits > bosCosterSkipBits {
			term := g.MulScalar(g.Zero(), top.base, top.k.ToBig())
			if g.IsZero(skipped) {
				skipped = term
			} else {
				skipped = g.Add(g.Zero(), skipped, term)
			}
			top.k.Clear()
		} else {
			top.k.Sub(top.k, runnerUp.k)
			runnerUp.base = g.Add(g.Zero(), runnerUp.base, top.base)
		}
		heap.Fix(&h, 0)
	}

	result := g.MulScalar(g.Zero(), h[0].base, h[0].k.ToBig())
	if !g.IsZero(skipped) {
		result = g.Add(result, result, skipped)
	}
	return result
}
