package battlezips

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var ErrShipOverlap = errors.New("ships overlap")

// Fleet holds one ship per slot in ShipLengths order.
type Fleet [NumShips]Ship

// Board is the assembled occupancy of a full fleet. Construction validates
// bounds and collision-freedom, so malformed layouts are rejected natively
// before any witness is built; the circuits re-prove the same rules.
type Board struct {
	fleet Fleet
	cells *bitset.BitSet
}

// NewBoard assembles and validates a fleet.
func NewBoard(fleet Fleet) (*Board, error) {
	cells := bitset.New(BoardBits)
	for i, ship := range fleet {
		placed, err := ship.Cells(ShipLengths[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ShipNames[i], err)
		}
		for _, c := range placed {
			if cells.Test(uint(c)) {
				return nil, fmt.Errorf("%s at cell %d: %w", ShipNames[i], c, ErrShipOverlap)
			}
			cells.Set(uint(c))
		}
	}
	return &Board{fleet: fleet, cells: cells}, nil
}

func (b *Board) Fleet() Fleet {
	return b.fleet
}

// Occupied reports whether cell (x, y) holds a ship.
func (b *Board) Occupied(x, y int) bool {
	return b.cells.Test(uint(y*Cols + x))
}

// State returns the board occupancy as a single field element whose i-th bit
// is set iff row-major cell i holds a ship.
func (b *Board) State() fr.Element {
	var state big.Int
	for i, ok := b.cells.NextSet(0); ok; i, ok = b.cells.NextSet(i + 1) {
		state.SetBit(&state, int(i), 1)
	}
	var el fr.Element
	el.SetBigInt(&state)
	return el
}

// ShipWitness exports the ten interleaved orientation commitments
// [h₀, v₀, ..., h₄, v₄] consumed by the board circuit.
func (b *Board) ShipWitness() ([2 * NumShips]*big.Int, error) {
	var ships [2 * NumShips]*big.Int
	for i, ship := range b.fleet {
		h, v, err := ship.Commitments(ShipLengths[i])
		if err != nil {
			return ships, fmt.Errorf("%s: %w", ShipNames[i], err)
		}
		ships[2*i] = h
		ships[2*i+1] = v
	}
	return ships, nil
}

// RandomFleet samples a uniformly random valid fleet by incremental
// rejection: each ship is re-drawn until it fits the cells still free.
func RandomFleet() Fleet {
	cells := bitset.New(BoardBits)
	var fleet Fleet
	for i := range fleet {
		for {
			ship := Ship{
				X:        uint8(rand.IntN(Cols)),
				Y:        uint8(rand.IntN(Rows)),
				Vertical: rand.IntN(2) == 1,
			}
			placed, err := ship.Cells(ShipLengths[i])
			if err != nil {
				continue
			}
			occupied := bitset.New(BoardBits)
			for _, c := range placed {
				occupied.Set(uint(c))
			}
			if cells.IntersectionCardinality(occupied) > 0 {
				continue
			}
			cells.InPlaceUnion(occupied)
			fleet[i] = ship
			break
		}
	}
	return fleet
}
