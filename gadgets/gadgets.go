// Package gadgets builds the circuit pieces of the signature-verification
// relation over the abstract constraint system: modular reduction mod q,
// bit decomposition, bound-specific range proofs, polynomial variables,
// the in-circuit transform with deferred reduction, and the norm checks.
// All gadget state is per-call; the only shared data are the precomputed
// twiddle tables and bound constants, which are read-only.
package gadgets

import (
	"math/big"

	"zk-falcon/falcon"
)

var (
	one  = big.NewInt(1)
	qBig = new(big.Int).SetUint64(falcon.Q)
)

// qBits is the bit width of q: 12289 = 0b11000000000001.
const qBits = 14
