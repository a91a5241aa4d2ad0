package battlezips

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrShotOutOfBounds = errors.New("shot coordinates outside the board")

// Shot targets a single board cell for one turn.
type Shot struct {
	X uint8 `cbor:"x"`
	Y uint8 `cbor:"y"`
}

// Commitment returns the shot as a field value with the single bit y*10+x
// set.
func (s Shot) Commitment() (*big.Int, error) {
	if int(s.X) >= Cols || int(s.Y) >= Rows {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrShotOutOfBounds, s.X, s.Y)
	}
	v := new(big.Int)
	v.SetBit(v, int(s.Y)*Cols+int(s.X), 1)
	return v, nil
}
