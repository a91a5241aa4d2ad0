// Package chips provides the reusable constrained sub-computations composed
// by the board and shot circuits: bit decomposition/recomposition, ship
// placement validity, and the transposition of per-ship bit vectors into a
// single board occupancy vector.
//
// All chips operate on a 10×10 board flattened row major: cell (x, y) is bit
// y*10 + x of a board value. Vertical ship commitments are the one exception,
// encoded column major (bit x*10 + y) so that a vertical run is contiguous in
// its own decomposition; the transpose chip maps them back.
package chips

// Board geometry. Fixed at compile time so every circuit shape, and with it
// proof size and constraint count, is static.
const (
	Rows = 10
	Cols = 10

	// BoardBits is the bit width of board-state and shot values.
	BoardBits = Rows * Cols
)
