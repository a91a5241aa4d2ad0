package battlezips

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
	"golang.org/x/sync/errgroup"

	boardcircuit "github.com/BattleZips/battlezips-gnark/circuits/board"
	shotcircuit "github.com/BattleZips/battlezips-gnark/circuits/shot"
)

// CircuitKeys bundles one compiled circuit shape with its Groth16 parameters.
type CircuitKeys struct {
	CCS constraint.ConstraintSystem
	PK  groth16.ProvingKey
	VK  groth16.VerifyingKey
}

// Keys holds the setup parameters for both circuit shapes. They are
// generated (or loaded) once and treated as immutable input to every prove
// and verify call; nothing mutates them afterwards.
type Keys struct {
	Board CircuitKeys
	Shot  CircuitKeys
}

// Setup compiles both circuit shapes and runs the Groth16 setup for each.
// The two shapes are independent and run in parallel.
func Setup() (*Keys, error) {
	var keys Keys
	var g errgroup.Group
	g.Go(func() (err error) {
		keys.Board, err = setupCircuit("board", &boardcircuit.Circuit{})
		return
	})
	g.Go(func() (err error) {
		keys.Shot, err = setupCircuit("shot", &shotcircuit.Circuit{})
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &keys, nil
}

func setupCircuit(name string, circuit frontend.Circuit) (CircuitKeys, error) {
	log := logger.Logger().With().Str("circuit", name).Logger()

	start := time.Now()
	ccs, err := frontend.Compile(Field, r1cs.NewBuilder, circuit)
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("compile %s circuit: %w", name, err)
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Dur("took", time.Since(start)).Msg("compiled")

	start = time.Now()
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("groth16 setup for %s circuit: %w", name, err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("setup done")

	return CircuitKeys{CCS: ccs, PK: pk, VK: vk}, nil
}

// Fingerprint identifies the setup parameters: a digest over both verifying
// keys. Proof artifacts carry it so that a proof generated under different
// parameters is rejected before verification is attempted.
func (k *Keys) Fingerprint() ([32]byte, error) {
	var fp [32]byte
	h := sha256.New()
	if _, err := k.Board.VK.WriteTo(h); err != nil {
		return fp, err
	}
	if _, err := k.Shot.VK.WriteTo(h); err != nil {
		return fp, err
	}
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

const (
	boardPKFile = "board.pk"
	boardVKFile = "board.vk"
	shotPKFile  = "shot.pk"
	shotVKFile  = "shot.vk"
)

// Save persists the Groth16 keys under dir. The constraint systems are not
// persisted: compilation is deterministic and cheap next to setup, so Load
// recompiles them instead.
func (k *Keys) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := []struct {
		name string
		src  io.WriterTo
	}{
		{boardPKFile, k.Board.PK},
		{boardVKFile, k.Board.VK},
		{shotPKFile, k.Shot.PK},
		{shotVKFile, k.Shot.VK},
	}
	for _, f := range files {
		if err := writeKeyFile(filepath.Join(dir, f.name), f.src); err != nil {
			return err
		}
	}
	return nil
}

// Load reads previously saved keys from dir, recompiling the circuit shapes.
func Load(dir string) (*Keys, error) {
	boardCCS, err := frontend.Compile(Field, r1cs.NewBuilder, &boardcircuit.Circuit{})
	if err != nil {
		return nil, err
	}
	shotCCS, err := frontend.Compile(Field, r1cs.NewBuilder, &shotcircuit.Circuit{})
	if err != nil {
		return nil, err
	}
	keys := Keys{
		Board: CircuitKeys{CCS: boardCCS, PK: groth16.NewProvingKey(Curve), VK: groth16.NewVerifyingKey(Curve)},
		Shot:  CircuitKeys{CCS: shotCCS, PK: groth16.NewProvingKey(Curve), VK: groth16.NewVerifyingKey(Curve)},
	}
	files := []struct {
		name string
		dst  io.ReaderFrom
	}{
		{boardPKFile, keys.Board.PK},
		{boardVKFile, keys.Board.VK},
		{shotPKFile, keys.Shot.PK},
		{shotVKFile, keys.Shot.VK},
	}
	for _, f := range files {
		if err := readKeyFile(filepath.Join(dir, f.name), f.dst); err != nil {
			return nil, err
		}
	}
	return &keys, nil
}

// LoadOrSetup reuses cached keys when all four files parse, otherwise runs a
// fresh setup and caches it.
func LoadOrSetup(dir string) (*Keys, error) {
	if keys, err := Load(dir); err == nil {
		return keys, nil
	}
	keys, err := Setup()
	if err != nil {
		return nil, err
	}
	if err := keys.Save(dir); err != nil {
		return nil, err
	}
	return keys, nil
}

func writeKeyFile(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = src.WriteTo(f)
	return err
}

func readKeyFile(path string, dst io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = dst.ReadFrom(f)
	return err
}
