package chips

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type roundTripCircuit struct {
	In  frontend.Variable
	Out frontend.Variable `gnark:",public"`
}

func (c *roundTripCircuit) Define(api frontend.API) error {
	b2n := NewBits2Num(api)
	bits := b2n.Decompose(c.In, BoardBits)
	api.AssertIsEqual(b2n.Recompose(bits), c.Out)
	return nil
}

func TestBits2NumRoundTrip(t *testing.T) {
	assert := test.NewAssert(t)

	// Top and bottom bits of the 100-bit range both set.
	in := new(big.Int).Lsh(big.NewInt(1), BoardBits-1)
	in.Or(in, big.NewInt(0b1011))

	// 2^100 has no 100-bit decomposition.
	tooWide := new(big.Int).Lsh(big.NewInt(1), BoardBits)

	assert.CheckCircuit(&roundTripCircuit{},
		test.WithValidAssignment(&roundTripCircuit{In: in, Out: in}),
		test.WithValidAssignment(&roundTripCircuit{In: 0, Out: 0}),
		test.WithInvalidAssignment(&roundTripCircuit{In: tooWide, Out: tooWide}),
		test.WithInvalidAssignment(&roundTripCircuit{In: 5, Out: 6}),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}
