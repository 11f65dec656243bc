package corpus

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"uni_advisor/internal/domain"
)

type dataset struct {
	All []map[string]any `json:"all"`
}

// Load reads a reviews dataset ({"all": [...]}) from path and builds the
// index. Any failure wraps domain.ErrDataLoad.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrDataLoad, path, err)
	}
	defer f.Close()
	idx, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

// Decode parses a dataset document from r.
func Decode(r io.Reader) (*Index, error) {
	var ds dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrDataLoad, err)
	}
	if ds.All == nil {
		return nil, fmt.Errorf("%w: missing top-level key \"all\"", domain.ErrDataLoad)
	}
	records := make([]domain.Record, 0, len(ds.All))
	for i, m := range ds.All {
		if m == nil {
			return nil, fmt.Errorf("%w: record %d is not an object", domain.ErrDataLoad, i)
		}
		rec, err := mapRecord(i, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
		}
		records = append(records, rec)
	}
	return New(records), nil
}
