package board_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"

	battlezips "github.com/BattleZips/battlezips-gnark"
	"github.com/BattleZips/battlezips-gnark/circuits/board"
	"github.com/BattleZips/battlezips-gnark/circuits/hasher"
)

// assignFleet builds a full witness from a validated fleet.
func assignFleet(t *testing.T, fleet battlezips.Fleet) *board.Circuit {
	t.Helper()
	b, err := battlezips.NewBoard(fleet)
	if err != nil {
		t.Fatal(err)
	}
	ships, err := b.ShipWitness()
	if err != nil {
		t.Fatal(err)
	}
	state := b.State()
	commitment := hasher.Commit(state)

	var c board.Circuit
	for i := range ships {
		c.Ships[i] = ships[i]
	}
	c.Commitment = commitment.BigInt(new(big.Int))
	return &c
}

func bitsOf(positions ...int) *big.Int {
	v := new(big.Int)
	for _, p := range positions {
		v.SetBit(v, p, 1)
	}
	return v
}

func TestBoardCircuit(t *testing.T) {
	assert := test.NewAssert(t)

	// Two layouts lifted from well-known valid patterns:
	// (x, y, vertical) per ship in fleet order.
	fleet1 := battlezips.Fleet{
		{X: 3, Y: 3, Vertical: true},
		{X: 5, Y: 4, Vertical: false},
		{X: 0, Y: 1, Vertical: false},
		{X: 0, Y: 5, Vertical: true},
		{X: 6, Y: 1, Vertical: false},
	}
	fleet2 := battlezips.Fleet{
		{X: 3, Y: 4, Vertical: false},
		{X: 9, Y: 6, Vertical: true},
		{X: 0, Y: 0, Vertical: false},
		{X: 0, Y: 6, Vertical: false},
		{X: 6, Y: 1, Vertical: true},
	}

	valid1 := assignFleet(t, fleet1)
	valid2 := assignFleet(t, fleet2)

	// Carrier vertical at (3,3) covers cell 33; a Destroyer at (1,3)
	// horizontal covers 31,32,33 — overlap at 33 must be unprovable.
	overlap := *valid1
	h, _, err := battlezips.Ship{X: 1, Y: 3}.Commitments(3)
	if err != nil {
		t.Fatal(err)
	}
	overlap.Ships[4] = h
	overlap.Ships[5] = 0

	// Valid fleet, wrong public commitment.
	badCommitment := *valid1
	badCommitment.Commitment = new(big.Int).Add(valid1.Commitment.(*big.Int), big.NewInt(1))

	// Cruiser claims both orientations at once.
	bothOrientations := *valid1
	bothOrientations.Ships[8] = bitsOf(16, 17)
	bothOrientations.Ships[9] = bitsOf(90, 91)

	assert.CheckCircuit(&board.Circuit{},
		test.WithValidAssignment(valid1),
		test.WithValidAssignment(valid2),
		test.WithInvalidAssignment(&overlap),
		test.WithInvalidAssignment(&badCommitment),
		test.WithInvalidAssignment(&bothOrientations),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}
