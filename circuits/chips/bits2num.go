package chips

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

// Bits2Num converts between field elements and fixed-width bit vectors
// inside the constraint system.
type Bits2Num struct {
	api frontend.API
}

func NewBits2Num(api frontend.API) *Bits2Num {
	return &Bits2Num{api: api}
}

// Decompose returns the n low-order bits of v, least significant first.
// Every returned variable is constrained to {0,1} and the weighted sum
// Σ bᵢ·2ⁱ is constrained to equal v, so a value v ≥ 2ⁿ admits no satisfying
// assignment. All n bits are committed together; there is no partial
// decomposition a prover could substitute an inconsistent subset into.
func (c *Bits2Num) Decompose(v frontend.Variable, n int) []frontend.Variable {
	return bits.ToBinary(c.api, v, bits.WithNbDigits(n))
}

// Recompose folds a bit vector (least significant first) back into its
// value via the same weighted-sum identity. It records no booleanity
// constraints of its own: callers pass bits already constrained elsewhere.
func (c *Bits2Num) Recompose(bs []frontend.Variable) frontend.Variable {
	coeff := big.NewInt(1)
	acc := frontend.Variable(0)
	for i := range bs {
		acc = c.api.Add(acc, c.api.Mul(new(big.Int).Set(coeff), bs[i]))
		coeff.Lsh(coeff, 1)
	}
	return acc
}
