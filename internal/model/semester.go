package model

type DegreeClass string

const (
	FirstClass       DegreeClass = "First Class"
	SecondClassUpper DegreeClass = "Second Class Upper"
	SecondClassLower DegreeClass = "Second Class Lower"
	ThirdClass       DegreeClass = "Third Class"
	Pass             DegreeClass = "Pass"
	Fail             DegreeClass = "Fail"
)

// SemesterRecord is one finalized (year, term) entry in the ledger. The pair
// (Year, Term) is unique; re-finalizing the same key overwrites the record in
// place under the same ID.
type SemesterRecord struct {
	ID          int64   `json:"id" db:"id"`
	Year        int     `json:"year" db:"year"`
	Term        int     `json:"term" db:"term"`
	TotalUnits  int     `json:"total_units" db:"total_units"`
	TotalPoints int     `json:"total_points" db:"total_points"`
	GPA         float64 `json:"gpa" db:"gpa"`
}

// SemesterSummary is the aggregate of one list of course rows.
type SemesterSummary struct {
	TotalCourses int     `json:"total_courses"`
	TotalUnits   int     `json:"total_units"`
	TotalPoints  int     `json:"total_points"`
	GPA          float64 `json:"gpa"`
}

// CumulativeSummary is derived from every finalized semester on demand and
// never persisted.
type CumulativeSummary struct {
	Semesters   int         `json:"semesters"`
	TotalUnits  int         `json:"total_units"`
	TotalPoints int         `json:"total_points"`
	CGPA        float64     `json:"cgpa"`
	Class       DegreeClass `json:"class"`
}
