// Package battlezips is the native (off-circuit) layer of the BattleZips
// proving system: fleet and board modelling, witness construction, Groth16
// key management, and the prove/verify entry points for the board and shot
// circuits under circuits/.
package battlezips

import (
	"github.com/consensys/gnark-crypto/ecc"

	"github.com/BattleZips/battlezips-gnark/circuits/board"
	"github.com/BattleZips/battlezips-gnark/circuits/chips"
)

const (
	Rows      = chips.Rows
	Cols      = chips.Cols
	BoardBits = chips.BoardBits
	NumShips  = board.NumShips
)

// ShipLengths mirrors the circuit-side fleet definition.
var ShipLengths = board.ShipLengths

var ShipNames = [NumShips]string{"Carrier", "Battleship", "Destroyer", "Submarine", "Cruiser"}

// Curve and Field pin the proving backend. The Poseidon2 parameters in
// circuits/hasher are specific to BLS12-381, so the curve is not swappable
// without also swapping the hasher.
var (
	Curve = ecc.BLS12_381
	Field = ecc.BLS12_381.ScalarField()
)
