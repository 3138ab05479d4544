package compute

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

func TestPointValue(t *testing.T) {
	expected := map[model.Grade]int{
		model.GradeA: 5,
		model.GradeB: 4,
		model.GradeC: 3,
		model.GradeD: 2,
		model.GradeE: 1,
		model.GradeF: 0,
	}
	for g, want := range expected {
		v, err := PointValue(g)
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err := PointValue(model.Grade("G"))
	assert.ErrorIs(t, err, errors.ErrInvalidGrade)
}

func TestCoursePoints(t *testing.T) {
	assert.Equal(t, 15, CoursePoints(3, model.GradeA))
	assert.Equal(t, 6, CoursePoints(2, model.GradeC))
	assert.Equal(t, 0, CoursePoints(4, model.GradeF))
	assert.Equal(t, 0, CoursePoints(0, model.GradeA))
}

func TestSummarizeRecomputesPoints(t *testing.T) {
	// Stale Points values must not leak into the totals.
	rows := []model.CourseRow{
		{Code: "MTH101", Units: 3, Grade: model.GradeA, Points: 999},
		{Code: "PHY101", Units: 2, Grade: model.GradeC, Points: -1},
	}

	s := Summarize(rows)
	assert.Equal(t, 2, s.TotalCourses)
	assert.Equal(t, 5, s.TotalUnits)
	assert.Equal(t, 21, s.TotalPoints)
	assert.Equal(t, 4.20, s.GPA)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalCourses)
	assert.Equal(t, 0, s.TotalUnits)
	assert.Equal(t, 0, s.TotalPoints)
	assert.Equal(t, 0.0, s.GPA)
}

func TestSummarizeZeroUnits(t *testing.T) {
	rows := []model.CourseRow{
		{Code: "GST101", Units: 0, Grade: model.GradeA},
		{Code: "GST102", Units: 0, Grade: model.GradeB},
	}

	s := Summarize(rows)
	assert.Equal(t, 2, s.TotalCourses)
	assert.Equal(t, 0, s.TotalUnits)
	assert.Equal(t, 0.0, s.GPA)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	rows := []model.CourseRow{
		{Code: "MTH101", Units: 3, Grade: model.GradeA},
		{Code: "PHY101", Units: 2, Grade: model.GradeC},
		{Code: "CHM101", Units: 4, Grade: model.GradeB},
		{Code: "GST101", Units: 1, Grade: model.GradeE},
		{Code: "BIO101", Units: 2, Grade: model.GradeF},
	}
	want := Summarize(rows)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.CourseRow, len(rows))
		copy(shuffled, rows)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Summarize(shuffled))
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		gpa  float64
		want model.DegreeClass
	}{
		{5.00, model.FirstClass},
		{4.50, model.FirstClass},
		{4.49, model.SecondClassUpper},
		{3.50, model.SecondClassUpper},
		{3.49, model.SecondClassLower},
		{2.40, model.SecondClassLower},
		{2.39, model.ThirdClass},
		{1.50, model.ThirdClass},
		{1.49, model.Pass},
		{1.00, model.Pass},
		{0.99, model.Fail},
		{0.00, model.Fail},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.gpa), "gpa=%v", c.gpa)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.20, Round2(21.0/5.0))
	assert.Equal(t, 3.67, Round2(11.0/3.0))
	assert.Equal(t, 0.33, Round2(1.0/3.0))
}
