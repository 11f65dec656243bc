package catalog

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"uni_advisor/internal/domain"
)

const programsCSV = "\ufeffid,domain,duration,university,fees,cgpa,ielts,independent_scholarship,university_scholarship\n" +
	"1,Computer Science,1,University of Hull,15000,3.0,6.5,0,1\n" +
	"2,Data Science,2,Hull University,17000,3.2,7,1,0\n" +
	"3,Computer Science,1,Leeds,14000,2.8,6,0,0\n"

const descriptionsCSV = "Domain,Description\n" +
	"Computer Science,\"Algorithms, systems and software.\"\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(writeFile(t, dir, "programs.csv", programsCSV), writeFile(t, dir, "data2.csv", descriptionsCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(c.Programs()); got != 3 {
		t.Fatalf("programs: got %d want 3", got)
	}
	if ps := c.ByDomain("Computer Science"); len(ps) != 2 || ps[0].University != "University of Hull" || ps[0].ID != "1" {
		t.Fatalf("unexpected by-domain result: %+v", ps)
	}
	if ps := c.ByDomain("computer science"); len(ps) != 0 {
		t.Fatalf("domain match must be exact, got %+v", ps)
	}
	if d := c.Description("Computer Science"); d != "Algorithms, systems and software." {
		t.Fatalf("description: %q", d)
	}
	if d := c.Description("Law"); d != NoDescription {
		t.Fatalf("expected fallback, got %q", d)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "x")
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
}

func TestNormalizeNumber(t *testing.T) {
	cases := map[string]string{
		"3.50":  "3.5",
		"7.0":   "7.0",
		"6.5":   "6.5",
		"007":   "7",
		"15000": "15000",
	}
	for in, want := range cases {
		got, err := NormalizeNumber(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeNumber(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, bad := range []string{"abc", "1.2.3", ""} {
		if _, err := NormalizeNumber(bad); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("NormalizeNumber(%q): expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(url.Values{"domain": {"science"}, "cgpa": {"3.20"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Domain == nil || *q.Domain != "science" || q.CGPA == nil || *q.CGPA != "3.2" {
		t.Fatalf("unexpected query: %+v", q)
	}
	if q.University != nil || q.Fees != nil {
		t.Fatalf("absent params must stay nil: %+v", q)
	}
	if _, err := ParseQuery(url.Values{"fees": {"cheap"}}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
