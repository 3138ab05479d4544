package model

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE, GradeF:
		return true
	}
	return false
}

// CourseRow is one course's contribution to a semester. Points is derived
// from Units and Grade; every write path recomputes it, a caller-supplied
// value is never trusted.
type CourseRow struct {
	ID     string `json:"id" db:"id"`
	Code   string `json:"code" db:"code"`
	Units  int    `json:"units" db:"units"`
	Grade  Grade  `json:"grade" db:"grade"`
	Points int    `json:"points" db:"points"`
}

// NewCourseRow returns an empty draft row in its lifecycle default state:
// grade F, zero units (unset), no code.
func NewCourseRow(id string) CourseRow {
	return CourseRow{ID: id, Grade: GradeF}
}
