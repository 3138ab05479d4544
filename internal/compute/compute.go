package compute

import (
	"math"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

// gradeScale is the institution's 5-point scale. Fixed for the system's
// lifetime, not user-configurable.
var gradeScale = map[model.Grade]int{
	model.GradeA: 5,
	model.GradeB: 4,
	model.GradeC: 3,
	model.GradeD: 2,
	model.GradeE: 1,
	model.GradeF: 0,
}

// PointValue maps a grade letter to its scale value. Unknown letters return
// ErrInvalidGrade; callers holding a validated model.Grade never hit it.
func PointValue(g model.Grade) (int, error) {
	v, ok := gradeScale[g]
	if !ok {
		return 0, errors.ErrInvalidGrade
	}
	return v, nil
}

// CoursePoints is units * pointValue(grade). Integer arithmetic, no rounding.
// Units below zero are a caller precondition violation, not checked here.
// An unknown grade contributes zero, same as F.
func CoursePoints(units int, g model.Grade) int {
	return units * gradeScale[g]
}

// Summarize aggregates one list of course rows. Points are recomputed from
// (units, grade) on every pass; the stored Points field is ignored. GPA is
// total points over total units rounded to 2 decimals, and exactly 0 when
// there are no units.
func Summarize(rows []model.CourseRow) model.SemesterSummary {
	s := model.SemesterSummary{TotalCourses: len(rows)}
	for _, r := range rows {
		s.TotalUnits += r.Units
		s.TotalPoints += CoursePoints(r.Units, r.Grade)
	}
	if s.TotalUnits > 0 {
		s.GPA = Round2(float64(s.TotalPoints) / float64(s.TotalUnits))
	}
	return s
}

// Classify maps a GPA or CGPA to its degree class. Thresholds are inclusive
// and evaluated highest first.
func Classify(gpa float64) model.DegreeClass {
	switch {
	case gpa >= 4.50:
		return model.FirstClass
	case gpa >= 3.50:
		return model.SecondClassUpper
	case gpa >= 2.40:
		return model.SecondClassLower
	case gpa >= 1.50:
		return model.ThirdClass
	case gpa >= 1.00:
		return model.Pass
	default:
		return model.Fail
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
