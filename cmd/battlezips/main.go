// Command battlezips drives the two Battleship proof circuits from the
// shell: generate setup keys, commit to a board, prove shot results, and
// verify either proof from its public artifact alone.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	battlezips "github.com/BattleZips/battlezips-gnark"
)

var log zerolog.Logger

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()
	gnarklogger.Set(log)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "keys":
		err = cmdKeys()
	case "init":
		err = cmdInit()
	case "commit":
		err = cmdCommit()
	case "shoot":
		err = cmdShoot()
	case "verify-board":
		err = cmdVerifyBoard()
	case "verify-shot":
		err = cmdVerifyShot()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `battlezips - zero-knowledge Battleship proofs

Commands:
  keys         --keys ./keys
  init         --secret secret.cbor
  commit       --secret secret.cbor --keys ./keys --out board.proof
  shoot        --secret secret.cbor --keys ./keys --x X --y Y --out shot.proof
  verify-board --keys ./keys --proof board.proof
  verify-shot  --keys ./keys --proof shot.proof [--commitment HEX]`)
}

// loadKeys reuses cached setup parameters or generates them, with a spinner
// since a fresh Groth16 setup takes a while.
func loadKeys(dir string) (*battlezips.Keys, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("loading setup parameters"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				bar.Add(1)
			}
		}
	}()
	keys, err := battlezips.LoadOrSetup(dir)
	close(done)
	bar.Finish()
	fmt.Fprintln(os.Stderr)
	return keys, err
}

func cmdKeys() error {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	dir := fs.String("keys", "./keys", "keys directory")
	fs.Parse(os.Args[2:])

	keys, err := loadKeys(*dir)
	if err != nil {
		return err
	}
	fp, err := keys.Fingerprint()
	if err != nil {
		return err
	}
	log.Info().Str("params", hex.EncodeToString(fp[:8])).Msg("setup parameters ready")
	return nil
}

func cmdInit() error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	secretPath := fs.String("secret", "secret.cbor", "private fleet file")
	fs.Parse(os.Args[2:])

	fleet := battlezips.RandomFleet()
	if err := battlezips.WriteArtifact(*secretPath, &battlezips.Secret{Fleet: fleet}); err != nil {
		return err
	}
	for i, ship := range fleet {
		orientation := "horizontal"
		if ship.Vertical {
			orientation = "vertical"
		}
		log.Info().
			Str("ship", battlezips.ShipNames[i]).
			Int("x", int(ship.X)).Int("y", int(ship.Y)).
			Str("orientation", orientation).
			Msg("placed")
	}
	log.Info().Str("file", *secretPath).Msg("fleet saved")
	return nil
}

func cmdCommit() error {
	fs := flag.NewFlagSet("commit", flag.ExitOnError)
	secretPath := fs.String("secret", "secret.cbor", "private fleet file")
	keysDir := fs.String("keys", "./keys", "keys directory")
	out := fs.String("out", "board.proof", "board proof output")
	fs.Parse(os.Args[2:])

	var secret battlezips.Secret
	if err := battlezips.ReadArtifact(*secretPath, &secret); err != nil {
		return err
	}
	keys, err := loadKeys(*keysDir)
	if err != nil {
		return err
	}

	start := time.Now()
	proof, err := battlezips.ProveBoard(keys, secret.Fleet)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("board proof generated")

	if err := battlezips.WriteArtifact(*out, proof); err != nil {
		return err
	}
	fmt.Println("commitment:", hex.EncodeToString(proof.Commitment))
	return nil
}

func cmdShoot() error {
	fs := flag.NewFlagSet("shoot", flag.ExitOnError)
	secretPath := fs.String("secret", "secret.cbor", "private fleet file")
	keysDir := fs.String("keys", "./keys", "keys directory")
	x := fs.Int("x", -1, "shot column [0,9]")
	y := fs.Int("y", -1, "shot row [0,9]")
	out := fs.String("out", "shot.proof", "shot proof output")
	fs.Parse(os.Args[2:])

	if *x < 0 || *x >= battlezips.Cols || *y < 0 || *y >= battlezips.Rows {
		return fmt.Errorf("shot (%d,%d) outside the board", *x, *y)
	}
	var secret battlezips.Secret
	if err := battlezips.ReadArtifact(*secretPath, &secret); err != nil {
		return err
	}
	board, err := battlezips.NewBoard(secret.Fleet)
	if err != nil {
		return err
	}
	keys, err := loadKeys(*keysDir)
	if err != nil {
		return err
	}

	hit := board.Occupied(*x, *y)
	start := time.Now()
	proof, err := battlezips.ProveShot(keys, board, battlezips.Shot{X: uint8(*x), Y: uint8(*y)}, hit)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Bool("hit", hit).Msg("shot proof generated")

	if err := battlezips.WriteArtifact(*out, proof); err != nil {
		return err
	}
	if hit {
		fmt.Println("hit")
	} else {
		fmt.Println("miss")
	}
	return nil
}

func cmdVerifyBoard() error {
	fs := flag.NewFlagSet("verify-board", flag.ExitOnError)
	keysDir := fs.String("keys", "./keys", "keys directory")
	proofPath := fs.String("proof", "board.proof", "board proof file")
	fs.Parse(os.Args[2:])

	var proof battlezips.BoardProof
	if err := battlezips.ReadArtifact(*proofPath, &proof); err != nil {
		return err
	}
	keys, err := loadKeys(*keysDir)
	if err != nil {
		return err
	}
	if err := battlezips.VerifyBoard(keys, &proof); err != nil {
		return err
	}
	fmt.Println("valid board, commitment:", hex.EncodeToString(proof.Commitment))
	return nil
}

func cmdVerifyShot() error {
	fs := flag.NewFlagSet("verify-shot", flag.ExitOnError)
	keysDir := fs.String("keys", "./keys", "keys directory")
	proofPath := fs.String("proof", "shot.proof", "shot proof file")
	commitment := fs.String("commitment", "", "expected board commitment (hex, optional)")
	fs.Parse(os.Args[2:])

	var proof battlezips.ShotProof
	if err := battlezips.ReadArtifact(*proofPath, &proof); err != nil {
		return err
	}
	if *commitment != "" {
		expected, err := hex.DecodeString(*commitment)
		if err != nil {
			return fmt.Errorf("bad commitment hex: %w", err)
		}
		if !bytes.Equal(expected, proof.Commitment) {
			return fmt.Errorf("proof is against a different board commitment")
		}
	}
	keys, err := loadKeys(*keysDir)
	if err != nil {
		return err
	}
	if err := battlezips.VerifyShot(keys, &proof); err != nil {
		return err
	}
	result := "miss"
	if proof.Hit == 1 {
		result = "hit"
	}
	fmt.Println("valid shot proof:", result)
	return nil
}
