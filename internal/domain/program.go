package domain

// Program is one row of the program catalog (programs.csv). Values keep
// their CSV text form; numeric columns are compared as normalized text.
type Program struct {
	ID                     string `json:"id"`
	Domain                 string `json:"domain"`
	Duration               string `json:"duration"`
	University             string `json:"university"`
	Fees                   string `json:"fees"`
	CGPA                   string `json:"cgpa"`
	IELTS                  string `json:"ielts"`
	IndependentScholarship string `json:"independent_scholarship"`
	UniversityScholarship  string `json:"university_scholarship"`
}

// Description is one row of the domain description table (data2.csv).
type Description struct {
	Domain      string
	Description string
}
