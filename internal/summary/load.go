package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInput marks a summary file that cannot be read or decoded. This is
// the only fatal input condition; per-record junk degrades silently.
var ErrInput = errors.New("summary input unavailable")

// Load reads the summary file and decodes its record list. The top level
// must be a JSON array; anything else fails before any output is produced.
func Load(path string) ([]ServiceRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInput, path, err)
	}
	// json.Unmarshal happily leaves the slice nil for a top-level null,
	// which is not a record list.
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, fmt.Errorf("%w: decode %s: top-level value is null, not an array", ErrInput, path)
	}
	var records []ServiceRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInput, path, err)
	}
	return records, nil
}
