// Centralizes Poseidon2 parameters for both native and circuit code.
package hasher

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"
)

const WIDTH = 2
const ROUND_FULL = 8
const ROUND_PARTIAL = 56
const SEED = "BATTLEZIPS_POSEIDON2_SEED"

// GetPermutation returns the native Poseidon2 permutation using the
// parameters above. Circuit and native code must agree on these or the
// commitment binding constraint can never be satisfied.
var GetPermutation = sync.OnceValue(func() *poseidon2.Permutation {
	return poseidon2.NewPermutationWithSeed(WIDTH, ROUND_FULL, ROUND_PARTIAL, SEED)
})
