// Package storage persists the budget and transaction collections as CSV
// files. Every write is a whole-file rewrite through a temporary file that
// is renamed over the target, so a store is never observed half-written.
package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic writes a CSV store to path. The records are written to a
// temporary file in the same directory first; rename is atomic on POSIX
// filesystems.
func writeAtomic(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}

	return nil
}

// readAll reads a CSV store including its header row. The caller owns
// header validation; a missing file is reported as-is so callers can
// distinguish "bootstrap needed" from corruption.
func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows with the wrong field count are a store-level error, reported
	// with their position instead of the generic csv.ErrFieldCount
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
