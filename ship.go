package battlezips

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrShipOutOfBounds = errors.New("ship extends beyond the board")

// Ship places a vessel by its head cell and orientation. Horizontal ships
// extend toward +x, vertical ships toward +y.
type Ship struct {
	X        uint8 `cbor:"x"`
	Y        uint8 `cbor:"y"`
	Vertical bool  `cbor:"vertical"`
}

// Cells returns the row-major board indices covered by a ship of the given
// length, or ErrShipOutOfBounds when any cell falls off the board.
func (s Ship) Cells(length int) ([]int, error) {
	cells := make([]int, length)
	for i := 0; i < length; i++ {
		x, y := int(s.X), int(s.Y)
		if s.Vertical {
			y += i
		} else {
			x += i
		}
		if x >= Cols || y >= Rows {
			return nil, fmt.Errorf("%w: head (%d,%d) length %d", ErrShipOutOfBounds, s.X, s.Y, length)
		}
		cells[i] = y*Cols + x
	}
	return cells, nil
}

// Commitments returns the (horizontal, vertical) orientation pair for the
// ship: the placed orientation carries a run of `length` set bits, the other
// is zero. Horizontal runs sit at bits y*10+x+i (row major); vertical runs
// at bits x*10+y+i (column major), so either run is contiguous in its own
// commitment's decomposition.
func (s Ship) Commitments(length int) (horizontal, vertical *big.Int, err error) {
	if _, err = s.Cells(length); err != nil {
		return nil, nil, err
	}
	horizontal, vertical = new(big.Int), new(big.Int)
	for i := 0; i < length; i++ {
		if s.Vertical {
			vertical.SetBit(vertical, int(s.X)*Rows+int(s.Y)+i, 1)
		} else {
			horizontal.SetBit(horizontal, int(s.Y)*Cols+int(s.X)+i, 1)
		}
	}
	return horizontal, vertical, nil
}
