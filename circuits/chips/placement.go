package chips

import (
	"github.com/consensys/gnark/frontend"
)

// Placement proves that one ship's orientation pair is legally placed:
// at most one orientation carries a value, and that value's bits form a
// single contiguous run of the ship's length that stays inside one row.
type Placement struct {
	api    frontend.API
	length int
}

// NewPlacement builds a placement chip for a ship of the given length.
func NewPlacement(api frontend.API, length int) *Placement {
	if length < 1 || length > Cols {
		panic("ship length out of range")
	}
	return &Placement{api: api, length: length}
}

// Collapse merges the horizontal and vertical decompositions cell-wise.
// Orientation exclusivity (enforced in Assert) zeroes one whole vector, so
// the merged values remain bits.
func (p *Placement) Collapse(horizontal, vertical []frontend.Variable) []frontend.Variable {
	merged := make([]frontend.Variable, len(horizontal))
	for i := range horizontal {
		merged[i] = p.api.Add(horizontal[i], vertical[i])
	}
	return merged
}

// Assert constrains a collapsed placement vector to be a valid ship of
// length L:
//
//	h·v == 0          at most one orientation in use
//	Σ bitsᵢ == L      exactly L cells occupied (rules out the all-zero pair)
//	Σ fullᵢ == 1      those L cells are one unbroken in-row run
//
// A window of L consecutive bits is "full" when its sum reaches L. Windows
// whose start offset satisfies i%10 + L > 10 would wrap across a row edge
// and are never counted, so a run crossing rows leaves zero full windows.
// Vertical commitments are column major, which turns their column runs into
// the same in-row shape.
func (p *Placement) Assert(horizontal, vertical frontend.Variable, bits []frontend.Variable) {
	api := p.api
	api.AssertIsEqual(api.Mul(horizontal, vertical), 0)

	count := frontend.Variable(0)
	for _, b := range bits {
		count = api.Add(count, b)
	}
	api.AssertIsEqual(count, p.length)

	full := frontend.Variable(0)
	for i := 0; i+p.length <= len(bits); i++ {
		if i%Cols+p.length > Cols {
			continue
		}
		window := frontend.Variable(0)
		for j := 0; j < p.length; j++ {
			window = api.Add(window, bits[i+j])
		}
		full = api.Add(full, api.IsZero(api.Sub(window, p.length)))
	}
	api.AssertIsEqual(full, 1)
}
