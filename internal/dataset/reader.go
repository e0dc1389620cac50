package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadFile reads a ball-by-ball CSV export and returns its rows mapped onto
// the internal schema, plus a sha256 content hash used as the dataset's
// idempotency key.
func ReadFile(path string) ([]RawRecord, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, "", fmt.Errorf("hash dataset: %w", err)
	}
	hash := fmt.Sprintf("%x", h.Sum(nil))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("seek dataset: %w", err)
	}

	records, err := Read(f)
	if err != nil {
		return nil, "", err
	}
	return records, hash, nil
}

// Read parses CSV rows from r. The first row must be a header containing all
// required columns.
func Read(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // source rows are occasionally ragged

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	adapter, err := NewAdapter(header)
	if err != nil {
		return nil, err
	}

	var out []RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		out = append(out, adapter.Record(row))
	}
	return out, nil
}
