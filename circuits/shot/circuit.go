// Package shot implements the shot-result circuit: a private board state,
// consistent with a public commitment, provably hits or misses a publicly
// declared shot cell.
package shot

import (
	"github.com/consensys/gnark/frontend"

	"github.com/BattleZips/battlezips-gnark/circuits/chips"
	"github.com/BattleZips/battlezips-gnark/circuits/hasher"
)

// Circuit proves that Hit is the board's bit at the shot cell.
//
// The three public values are re-asserted inside the circuit, so a verifier
// holding only (Commitment, Shot, Hit) learns that they are mutually
// consistent with some private board state and nothing else.
type Circuit struct {
	State      frontend.Variable `gnark:",secret"`
	Commitment frontend.Variable `gnark:",public"`
	Shot       frontend.Variable `gnark:",public"`
	Hit        frontend.Variable `gnark:",public"`
}

func (c *Circuit) Define(api frontend.API) error {
	b2n := chips.NewBits2Num(api)
	boardBits := b2n.Decompose(c.State, chips.BoardBits)
	shotBits := b2n.Decompose(c.Shot, chips.BoardBits)

	// One and only one cell targeted per turn.
	count := frontend.Variable(0)
	for _, b := range shotBits {
		count = api.Add(count, b)
	}
	api.AssertIsEqual(count, 1)

	// With a single shot bit set, the dot product reads the board at the
	// targeted cell.
	hit := frontend.Variable(0)
	for i := range shotBits {
		hit = api.Add(hit, api.Mul(boardBits[i], shotBits[i]))
	}
	api.AssertIsBoolean(c.Hit)
	api.AssertIsEqual(hit, c.Hit)

	perm, err := hasher.NewPermutation(api)
	if err != nil {
		return err
	}
	api.AssertIsEqual(perm.CommitVar(c.State), c.Commitment)
	return nil
}
