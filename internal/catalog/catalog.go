// Package catalog serves the program and domain-description tables loaded
// from CSV at startup.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"uni_advisor/internal/domain"
)

// NoDescription is returned for a domain without a description row.
const NoDescription = "Description not available"

type Catalog struct {
	programs     []domain.Program
	byDomain     map[string][]domain.Program
	descriptions []domain.Description
}

func New(programs []domain.Program, descs []domain.Description) *Catalog {
	c := &Catalog{programs: programs, descriptions: descs, byDomain: make(map[string][]domain.Program)}
	for _, p := range programs {
		c.byDomain[p.Domain] = append(c.byDomain[p.Domain], p)
	}
	return c
}

// Load reads both CSV files. Failures wrap domain.ErrDataLoad.
func Load(programsPath, descriptionsPath string) (*Catalog, error) {
	ps, err := LoadPrograms(programsPath)
	if err != nil {
		return nil, err
	}
	ds, err := LoadDescriptions(descriptionsPath)
	if err != nil {
		return nil, err
	}
	return New(ps, ds), nil
}

func (c *Catalog) Programs() []domain.Program { return c.programs }

// ByDomain returns programs whose domain equals d exactly.
func (c *Catalog) ByDomain(d string) []domain.Program { return c.byDomain[d] }

// Description returns the first description row for domain d.
func (c *Catalog) Description(d string) string {
	for _, desc := range c.descriptions {
		if desc.Domain == d {
			return desc.Description
		}
	}
	return NoDescription
}

func LoadPrograms(path string) ([]domain.Program, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Program, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Program{
			ID:                     r["id"],
			Domain:                 r["domain"],
			Duration:               r["duration"],
			University:             r["university"],
			Fees:                   r["fees"],
			CGPA:                   r["cgpa"],
			IELTS:                  r["ielts"],
			IndependentScholarship: r["independent_scholarship"],
			UniversityScholarship:  r["university_scholarship"],
		})
	}
	return out, nil
}

func LoadDescriptions(path string) ([]domain.Description, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Description, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Description{Domain: r["Domain"], Description: r["Description"]})
	}
	return out, nil
}

// readCSV returns every data row keyed by header name.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrDataLoad, path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	header, err := rd.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrDataLoad, path, err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}
	var rows []map[string]string
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrDataLoad, path, err)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
