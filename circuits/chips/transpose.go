package chips

import (
	"github.com/consensys/gnark/frontend"
)

// Transpose merges validated per-ship bit vectors into the single board
// occupancy vector. Collision-freedom falls out of the merge: each cell is
// the sum of the ten ship bits at that position, and constraining that sum
// to a bit makes any doubly-occupied cell (sum ≥ 2) unsatisfiable, with no
// explicit collision flag.
type Transpose struct {
	api frontend.API
}

func NewTranspose(api frontend.API) *Transpose {
	return &Transpose{api: api}
}

// Merge consumes the interleaved orientation decompositions
// [h₀, v₀, ..., h₄, v₄] and returns the 100 row-major board cells. Odd
// entries hold column-major vertical commitments; their bit for row-major
// cell i lives at index (i%10)*10 + i/10.
func (t *Transpose) Merge(ships [][]frontend.Variable) []frontend.Variable {
	if len(ships)%2 != 0 {
		panic("ship vectors must come in orientation pairs")
	}
	merged := make([]frontend.Variable, BoardBits)
	for i := 0; i < BoardBits; i++ {
		cell := frontend.Variable(0)
		for k := range ships {
			idx := i
			if k%2 == 1 {
				idx = (i%Cols)*Rows + i/Cols
			}
			cell = t.api.Add(cell, ships[k][idx])
		}
		t.api.AssertIsBoolean(cell)
		merged[i] = cell
	}
	return merged
}
