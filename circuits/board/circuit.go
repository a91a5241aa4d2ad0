// Package board implements the layout-validity circuit: ten private ship
// commitments prove a legally constructed 10×10 board whose only public
// output is a Poseidon2 commitment to the resulting board state.
package board

import (
	"github.com/consensys/gnark/frontend"

	"github.com/BattleZips/battlezips-gnark/circuits/chips"
	"github.com/BattleZips/battlezips-gnark/circuits/hasher"
)

// NumShips is the number of vessels in a fleet. Each contributes one
// horizontal/vertical commitment pair to the witness.
const NumShips = 5

// ShipLengths lists the fleet head to tail:
// Carrier, Battleship, Destroyer, Submarine, Cruiser.
var ShipLengths = [NumShips]int{5, 4, 3, 3, 2}

// Circuit proves that a set of ship placements forms a legal board.
//
// Ships holds the interleaved orientation pairs [h₀, v₀, ..., h₄, v₄]; for
// each pair exactly one value is nonzero, and vertical values are encoded
// column major. Everything but the final commitment stays private.
type Circuit struct {
	Ships      [2 * NumShips]frontend.Variable `gnark:",secret"`
	Commitment frontend.Variable               `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	b2n := chips.NewBits2Num(api)

	decomposed := make([][]frontend.Variable, len(c.Ships))
	for i := range c.Ships {
		decomposed[i] = b2n.Decompose(c.Ships[i], chips.BoardBits)
	}

	for s := 0; s < NumShips; s++ {
		placement := chips.NewPlacement(api, ShipLengths[s])
		merged := placement.Collapse(decomposed[2*s], decomposed[2*s+1])
		placement.Assert(c.Ships[2*s], c.Ships[2*s+1], merged)
	}

	cells := chips.NewTranspose(api).Merge(decomposed)
	state := b2n.Recompose(cells)

	perm, err := hasher.NewPermutation(api)
	if err != nil {
		return err
	}
	api.AssertIsEqual(perm.CommitVar(state), c.Commitment)
	return nil
}
