package battlezips

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	boardcircuit "github.com/BattleZips/battlezips-gnark/circuits/board"
	"github.com/BattleZips/battlezips-gnark/circuits/hasher"
	shotcircuit "github.com/BattleZips/battlezips-gnark/circuits/shot"
)

var (
	// ErrParamsMismatch marks a proof generated under different setup
	// parameters than the verifier holds. Verification fails closed.
	ErrParamsMismatch = errors.New("proof generated under different setup parameters")

	// ErrMalformedPublicInput marks public inputs rejected before any
	// constraint evaluation: wrong field size, non-boolean hit assertion.
	ErrMalformedPublicInput = errors.New("malformed public input")
)

// BoardProof is the exchanged artifact of a board-validity proof: the proof
// bytes, the public input vector (here a single commitment), and the
// fingerprint of the setup parameters it was generated under.
type BoardProof struct {
	Commitment []byte `cbor:"commitment"`
	Proof      []byte `cbor:"proof"`
	Params     []byte `cbor:"params"`
}

// ShotProof is the exchanged artifact of a shot-result proof with its three
// public inputs.
type ShotProof struct {
	Commitment []byte `cbor:"commitment"`
	Shot       []byte `cbor:"shot"`
	Hit        uint8  `cbor:"hit"`
	Proof      []byte `cbor:"proof"`
	Params     []byte `cbor:"params"`
}

// ProveBoard validates the fleet natively, then proves in zero knowledge
// that the layout is legal and bound to its Poseidon2 commitment. The ship
// placements never leave this process; only the commitment is exposed.
func ProveBoard(keys *Keys, fleet Fleet) (*BoardProof, error) {
	b, err := NewBoard(fleet)
	if err != nil {
		return nil, err
	}
	ships, err := b.ShipWitness()
	if err != nil {
		return nil, err
	}
	state := b.State()
	commitment := hasher.Commit(state)

	var assignment boardcircuit.Circuit
	for i := range ships {
		assignment.Ships[i] = ships[i]
	}
	assignment.Commitment = commitment.BigInt(new(big.Int))

	proofBytes, err := prove(&keys.Board, &assignment)
	if err != nil {
		return nil, err
	}
	fp, err := keys.Fingerprint()
	if err != nil {
		return nil, err
	}
	return &BoardProof{
		Commitment: commitment.Marshal(),
		Proof:      proofBytes,
		Params:     fp[:],
	}, nil
}

// VerifyBoard checks a board proof against public inputs only.
func VerifyBoard(keys *Keys, payload *BoardProof) error {
	if err := checkParams(keys, payload.Params); err != nil {
		return err
	}
	commitment, err := publicElement("board commitment", payload.Commitment)
	if err != nil {
		return err
	}
	assignment := boardcircuit.Circuit{Commitment: commitment}
	return verify(&keys.Board, &assignment, payload.Proof)
}

// ProveShot proves that the asserted hit value is the committed board's bit
// at the shot cell. An assertion inconsistent with the board (or a board
// inconsistent with its commitment) has no satisfying witness and surfaces
// as a proving failure with no further detail.
func ProveShot(keys *Keys, b *Board, shot Shot, hit bool) (*ShotProof, error) {
	shotValue, err := shot.Commitment()
	if err != nil {
		return nil, err
	}
	state := b.State()
	commitment := hasher.Commit(state)

	hitValue := uint8(0)
	if hit {
		hitValue = 1
	}
	assignment := shotcircuit.Circuit{
		State:      state.BigInt(new(big.Int)),
		Commitment: commitment.BigInt(new(big.Int)),
		Shot:       shotValue,
		Hit:        hitValue,
	}
	proofBytes, err := prove(&keys.Shot, &assignment)
	if err != nil {
		return nil, err
	}
	fp, err := keys.Fingerprint()
	if err != nil {
		return nil, err
	}
	var shotElement fr.Element
	shotElement.SetBigInt(shotValue)
	return &ShotProof{
		Commitment: commitment.Marshal(),
		Shot:       shotElement.Marshal(),
		Hit:        hitValue,
		Proof:      proofBytes,
		Params:     fp[:],
	}, nil
}

// VerifyShot checks a shot proof against public inputs only. The public hit
// assertion is range-checked before any witness is built.
func VerifyShot(keys *Keys, payload *ShotProof) error {
	if err := checkParams(keys, payload.Params); err != nil {
		return err
	}
	if payload.Hit > 1 {
		return fmt.Errorf("%w: hit assertion %d not in {0,1}", ErrMalformedPublicInput, payload.Hit)
	}
	commitment, err := publicElement("board commitment", payload.Commitment)
	if err != nil {
		return err
	}
	shotValue, err := publicElement("shot commitment", payload.Shot)
	if err != nil {
		return err
	}
	assignment := shotcircuit.Circuit{
		Commitment: commitment,
		Shot:       shotValue,
		Hit:        payload.Hit,
	}
	return verify(&keys.Shot, &assignment, payload.Proof)
}

func prove(ck *CircuitKeys, assignment frontend.Circuit) ([]byte, error) {
	witness, err := frontend.NewWitness(assignment, Field)
	if err != nil {
		return nil, err
	}
	proof, err := groth16.Prove(ck.CCS, ck.PK, witness)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func verify(ck *CircuitKeys, assignment frontend.Circuit, proofBytes []byte) error {
	public, err := frontend.NewWitness(assignment, Field, frontend.PublicOnly())
	if err != nil {
		return err
	}
	proof := groth16.NewProof(Curve)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("decode proof: %w", err)
	}
	return groth16.Verify(proof, ck.VK, public)
}

func checkParams(keys *Keys, params []byte) error {
	fp, err := keys.Fingerprint()
	if err != nil {
		return err
	}
	if !bytes.Equal(params, fp[:]) {
		return ErrParamsMismatch
	}
	return nil
}

// publicElement parses a canonical field-element encoding, rejecting wrong
// sizes and values outside the field.
func publicElement(name string, data []byte) (*big.Int, error) {
	if len(data) != fr.Bytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrMalformedPublicInput, name, len(data), fr.Bytes)
	}
	var el fr.Element
	if err := el.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPublicInput, name, err)
	}
	return el.BigInt(new(big.Int)), nil
}
