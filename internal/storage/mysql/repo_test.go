package mysql

import (
	"reflect"
	"testing"

	"uni_advisor/internal/domain"
)

func ptr(s string) *string { return &s }

func TestFilterClause(t *testing.T) {
	where, args := filterClause(domain.ProgramsQuery{})
	if where != "" || args != nil {
		t.Fatalf("empty query should not filter: %q %v", where, args)
	}

	where, args = filterClause(domain.ProgramsQuery{Domain: ptr("comp"), Fees: ptr("15000"), University: ptr("hull")})
	want := "\nWHERE REGEXP_LIKE(domain, ?, 'i') AND REGEXP_LIKE(university, ?, 'i') AND fees = ?"
	if where != want {
		t.Fatalf("where:\n got %q\nwant %q", where, want)
	}
	if !reflect.DeepEqual(args, []any{"comp", "hull", "15000"}) {
		t.Fatalf("args: %v", args)
	}
}
