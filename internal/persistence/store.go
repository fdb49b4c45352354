// Package persistence is the storage adapter (C5): it loads and saves
// heuristic.Table values as JSON on disk, alongside a BLAKE2b checksum
// sidecar that detects truncated or hand-edited table files before the
// solver ever trusts them.
package persistence

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gtank/blake2/blake2b"

	"github.com/kanavgoyal898/idacube/internal/heuristic"
)

// ErrHeuristicIO wraps every failure this package can produce: a missing
// or unreadable file, malformed JSON, or a checksum mismatch between a
// table file and its sidecar.
var ErrHeuristicIO = errors.New("persistence: heuristic store I/O failure")

const (
	tableFileName    = "heuristic.json"
	checksumFileName = "heuristic.sum"
	checksumSize     = 32
)

// Dir returns the on-disk directory a table for an n-dimensional cube is
// stored under, rooted at root: "<root>/cube_NxNxN".
func Dir(root string, n int) string {
	return filepath.Join(root, fmt.Sprintf("cube_%dx%dx%d", n, n, n))
}

// Save writes table as JSON to Dir(root, n)/heuristic.json, and a
// BLAKE2b-256 checksum of that exact byte content to heuristic.sum
// alongside it. It creates the directory if necessary.
func Save(root string, n int, table heuristic.Table) error {
	dir := Dir(root, n)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrHeuristicIO, dir, err)
	}

	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("%w: marshalling table: %v", ErrHeuristicIO, err)
	}

	sum, err := checksum(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHeuristicIO, err)
	}

	tablePath := filepath.Join(dir, tableFileName)
	if err := os.WriteFile(tablePath, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrHeuristicIO, tablePath, err)
	}

	sumPath := filepath.Join(dir, checksumFileName)
	if err := os.WriteFile(sumPath, []byte(hex.EncodeToString(sum)), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrHeuristicIO, sumPath, err)
	}
	return nil
}

// Load reads the table at Dir(root, n)/heuristic.json, verifying it
// against its heuristic.sum sidecar first. A mismatch, a missing file,
// or malformed JSON all surface as ErrHeuristicIO.
func Load(root string, n int) (heuristic.Table, error) {
	dir := Dir(root, n)
	tablePath := filepath.Join(dir, tableFileName)
	sumPath := filepath.Join(dir, checksumFileName)

	data, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrHeuristicIO, tablePath, err)
	}

	wantHex, err := os.ReadFile(sumPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrHeuristicIO, sumPath, err)
	}
	want, err := hex.DecodeString(string(wantHex))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding checksum in %s: %v", ErrHeuristicIO, sumPath, err)
	}

	got, err := checksum(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeuristicIO, err)
	}
	if !equalBytes(got, want) {
		return nil, fmt.Errorf("%w: checksum mismatch for %s", ErrHeuristicIO, tablePath)
	}

	var table heuristic.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling %s: %v", ErrHeuristicIO, tablePath, err)
	}
	return table, nil
}

// Exists reports whether a table file is already present for n under
// root, without validating its checksum.
func Exists(root string, n int) bool {
	_, err := os.Stat(filepath.Join(Dir(root, n), tableFileName))
	return err == nil
}

func checksum(data []byte) ([]byte, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		return nil, fmt.Errorf("initializing blake2b: %w", err)
	}
	if _, err := d.Write(data); err != nil {
		return nil, fmt.Errorf("hashing table: %w", err)
	}
	return d.Sum(nil), nil
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
