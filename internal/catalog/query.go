package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"uni_advisor/internal/domain"
)

// NormalizeNumber canonicalizes a numeric filter value the way the catalog
// stores it: values with a '.' become the shortest float text keeping a
// ".0" suffix for whole numbers ("3.50" -> "3.5", "7.0" -> "7.0"); others
// become integer text ("007" -> "7").
func NormalizeNumber(v string) (string, error) {
	v = strings.TrimSpace(v)
	if strings.Contains(v, ".") {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, v)
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, v)
	}
	return strconv.FormatInt(n, 10), nil
}

// ParseQuery builds a ProgramsQuery from URL parameters. Absent parameters
// stay unconstrained.
func ParseQuery(vals url.Values) (domain.ProgramsQuery, error) {
	var q domain.ProgramsQuery
	text := func(k string) *string {
		if _, ok := vals[k]; !ok {
			return nil
		}
		s := vals.Get(k)
		return &s
	}
	num := func(k string, dst **string) error {
		p := text(k)
		if p == nil {
			return nil
		}
		s, err := NormalizeNumber(*p)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*dst = &s
		return nil
	}

	q.ID = text("id")
	q.Domain = text("domain")
	q.Duration = text("duration")
	q.University = text("university")
	q.IndependentScholarship = text("independent_scholarship")
	q.UniversityScholarship = text("university_scholarship")
	for k, dst := range map[string]**string{"fees": &q.Fees, "cgpa": &q.CGPA, "ielts": &q.IELTS} {
		if err := num(k, dst); err != nil {
			return domain.ProgramsQuery{}, err
		}
	}
	return q, nil
}
