package carteira

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadLedger reads the ledger file at path. A missing file yields an
// empty ledger; a malformed file is a fatal load error for the
// session, surfaced to the caller with no partial recovery.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger persists the full ledger to path, replacing the previous
// file.
func SaveLedger(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	return nil
}

// RemoveLedger deletes the persisted ledger file. Irreversible; a
// missing file is not an error.
func RemoveLedger(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
