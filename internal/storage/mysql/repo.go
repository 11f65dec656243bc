package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"uni_advisor/internal/adapters/observability"
	"uni_advisor/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertPrograms(ctx context.Context, ps []domain.Program) (err error) {
	if len(ps) == 0 {
		return nil
	}
	defer func(start time.Time) { observability.ObserveStore("upsert_programs", err, time.Since(start)) }(time.Now())

	values := make([]string, 0, len(ps))
	args := make([]any, 0, len(ps)*9) // 9 params per row
	for _, p := range ps {
		values = append(values, "(?,?,?,?,?,?,?,?,?)")
		args = append(args,
			p.ID,
			p.Domain,
			p.Duration,
			p.University,
			p.Fees,
			p.CGPA,
			p.IELTS,
			p.IndependentScholarship,
			p.UniversityScholarship,
		)
	}
	_, err = r.db.ExecContext(ctx, upsertProgramsPrefix+strings.Join(values, ",")+upsertProgramsOnDup, args...)
	return err
}

// filterClause builds the WHERE clause for q. Numeric columns match exactly;
// text columns match a case-insensitive regular expression.
func filterClause(q domain.ProgramsQuery) (string, []any) {
	type cond struct {
		col   string
		val   *string
		exact bool
	}
	conds := []cond{
		{"id", q.ID, false},
		{"domain", q.Domain, false},
		{"duration", q.Duration, false},
		{"university", q.University, false},
		{"fees", q.Fees, true},
		{"cgpa", q.CGPA, true},
		{"ielts", q.IELTS, true},
		{"independent_scholarship", q.IndependentScholarship, false},
		{"university_scholarship", q.UniversityScholarship, false},
	}
	var where []string
	var args []any
	for _, c := range conds {
		if c.val == nil {
			continue
		}
		if c.exact {
			where = append(where, c.col+" = ?")
		} else {
			where = append(where, "REGEXP_LIKE("+c.col+", ?, 'i')")
		}
		args = append(args, *c.val)
	}
	if len(where) == 0 {
		return "", nil
	}
	return "\nWHERE " + strings.Join(where, " AND "), args
}

func (r *Repo) FilterPrograms(ctx context.Context, q domain.ProgramsQuery) (out []domain.Program, err error) {
	defer func(start time.Time) { observability.ObserveStore("filter_programs", err, time.Since(start)) }(time.Now())

	where, args := filterClause(q)
	rows, err := r.db.QueryContext(ctx, selectProgramsSQL+where+orderProgramsSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Program
		if err := rows.Scan(
			&p.ID,
			&p.Domain,
			&p.Duration,
			&p.University,
			&p.Fees,
			&p.CGPA,
			&p.IELTS,
			&p.IndependentScholarship,
			&p.UniversityScholarship,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListDomains(ctx context.Context) (out []string, err error) {
	defer func(start time.Time) { observability.ObserveStore("list_domains", err, time.Since(start)) }(time.Now())

	rows, err := r.db.QueryContext(ctx, listDomainsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
