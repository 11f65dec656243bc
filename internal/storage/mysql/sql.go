package mysql

const upsertProgramsPrefix = `
INSERT INTO programs
  (id, domain, duration, university, fees, cgpa, ielts, independent_scholarship, university_scholarship)
VALUES `

const upsertProgramsOnDup = `
ON DUPLICATE KEY UPDATE
  domain                  = VALUES(domain),
  duration                = VALUES(duration),
  university              = VALUES(university),
  fees                    = VALUES(fees),
  cgpa                    = VALUES(cgpa),
  ielts                   = VALUES(ielts),
  independent_scholarship = VALUES(independent_scholarship),
  university_scholarship  = VALUES(university_scholarship),
  updated_at              = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// WHERE clauses are appended by the repo from a fixed column whitelist.
const selectProgramsSQL = `
SELECT id, domain, duration, university, fees, cgpa, ielts,
       independent_scholarship, university_scholarship
FROM programs`

// Numeric ids sort numerically; anything else falls back to text order.
const orderProgramsSQL = `
ORDER BY CAST(id AS UNSIGNED), id`

const listDomainsSQL = `
SELECT domain FROM programs
ORDER BY CAST(id AS UNSIGNED), id`
