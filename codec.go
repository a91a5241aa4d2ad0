package battlezips

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Secret is the defender's private state persisted between committing a
// board and answering shots. It never leaves the prover's machine.
type Secret struct {
	Fleet Fleet `cbor:"fleet"`
}

// WriteArtifact CBOR-encodes v to path. Secrets get owner-only permissions;
// proof payloads are public either way.
func WriteArtifact(path string, v any) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o600)
}

// ReadArtifact decodes a CBOR artifact written by WriteArtifact.
func ReadArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
