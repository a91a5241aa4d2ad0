package battlezips

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type shipCase struct {
	ship   Ship
	length int
}

func genShipCase() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt8Range(0, Cols-1),
		gen.UInt8Range(0, Rows-1),
		gen.Bool(),
		gen.IntRange(1, Cols),
	).Map(func(vs []interface{}) shipCase {
		return shipCase{
			ship:   Ship{X: vs[0].(uint8), Y: vs[1].(uint8), Vertical: vs[2].(bool)},
			length: vs[3].(int),
		}
	})
}

func TestShipCommitmentProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	properties := gopter.NewProperties(params)

	properties.Property("in-bounds ship commits exactly length bits, one orientation zero", prop.ForAll(
		func(c shipCase) bool {
			h, v, err := c.ship.Commitments(c.length)
			if err != nil {
				// Out of bounds cases are covered below.
				return true
			}
			placed, empty := h, v
			if c.ship.Vertical {
				placed, empty = v, h
			}
			popcount := 0
			for i := 0; i < BoardBits; i++ {
				popcount += int(placed.Bit(i))
			}
			return popcount == c.length && empty.Sign() == 0
		},
		genShipCase(),
	))

	properties.Property("horizontal commitment bits match row-major cells", prop.ForAll(
		func(c shipCase) bool {
			if c.ship.Vertical {
				return true
			}
			cells, err := c.ship.Cells(c.length)
			if err != nil {
				return true
			}
			h, _, err := c.ship.Commitments(c.length)
			if err != nil {
				return false
			}
			for _, cell := range cells {
				if h.Bit(cell) != 1 {
					return false
				}
			}
			return true
		},
		genShipCase(),
	))

	properties.Property("out-of-bounds ship is rejected by both Cells and Commitments", prop.ForAll(
		func(c shipCase) bool {
			_, cellsErr := c.ship.Cells(c.length)
			_, _, commitErr := c.ship.Commitments(c.length)
			overflows := int(c.ship.X)+c.length > Cols
			if c.ship.Vertical {
				overflows = int(c.ship.Y)+c.length > Rows
			}
			if overflows {
				return cellsErr != nil && commitErr != nil
			}
			return cellsErr == nil && commitErr == nil
		},
		genShipCase(),
	))

	properties.TestingRun(t)
}
