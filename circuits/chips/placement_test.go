package chips

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type placementCircuit struct {
	length int

	H frontend.Variable
	V frontend.Variable
}

func (c *placementCircuit) Define(api frontend.API) error {
	b2n := NewBits2Num(api)
	hBits := b2n.Decompose(c.H, BoardBits)
	vBits := b2n.Decompose(c.V, BoardBits)
	placement := NewPlacement(api, c.length)
	placement.Assert(c.H, c.V, placement.Collapse(hBits, vBits))
	return nil
}

// shipValue builds a commitment value with the given bits set.
func shipValue(bits ...int) *big.Int {
	v := new(big.Int)
	for _, b := range bits {
		v.SetBit(v, b, 1)
	}
	return v
}

func TestPlacementDestroyer(t *testing.T) {
	assert := test.NewAssert(t)

	assert.CheckCircuit(&placementCircuit{length: 3},
		// horizontal at (2,1): cells 12..14
		test.WithValidAssignment(&placementCircuit{H: shipValue(12, 13, 14), V: 0}),
		// vertical at (4,0): column-major bits 40..42
		test.WithValidAssignment(&placementCircuit{H: 0, V: shipValue(40, 41, 42)}),
		// both orientations in use
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(12, 13, 14), V: shipValue(40, 41, 42)}),
		// ship not placed at all
		test.WithInvalidAssignment(&placementCircuit{H: 0, V: 0}),
		// broken run
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(12, 13, 15), V: 0}),
		// right count, two fragments
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(12, 13, 40), V: 0}),
		// run wraps across a row edge
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(9, 10, 11), V: 0}),
		// one cell too long
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(12, 13, 14, 15), V: 0}),
		// one cell short
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(12, 13), V: 0}),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}

func TestPlacementRowEdges(t *testing.T) {
	assert := test.NewAssert(t)

	// Runs that end exactly on a row edge are legal; the skipped windows
	// only exclude runs crossing it.
	assert.CheckCircuit(&placementCircuit{length: 2},
		test.WithValidAssignment(&placementCircuit{H: shipValue(8, 9), V: 0}),
		test.WithValidAssignment(&placementCircuit{H: shipValue(98, 99), V: 0}),
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(19, 20), V: 0}),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)

	assert.CheckCircuit(&placementCircuit{length: 5},
		test.WithValidAssignment(&placementCircuit{H: shipValue(5, 6, 7, 8, 9), V: 0}),
		test.WithInvalidAssignment(&placementCircuit{H: shipValue(6, 7, 8, 9, 10), V: 0}),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}
