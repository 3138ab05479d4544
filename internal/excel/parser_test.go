package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()
	for i, row := range rows {
		r := row
		require.NoError(t, file.SetSheetRow("Sheet1", cellRef(i), &r))
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func cellRef(rowIdx int) string {
	cell, _ := excelize.CoordinatesToCellName(1, rowIdx+1)
	return cell
}

func TestParserParsesCourses(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Code", "Units", "Grade"},
		{"MTH101", 3, "A"},
		{"PHY101", 2, "c"},
	})

	courses, err := NewParser().Parse(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, model.CourseRow{Code: "MTH101", Units: 3, Grade: model.GradeA}, courses[0])
	assert.Equal(t, model.CourseRow{Code: "PHY101", Units: 2, Grade: model.GradeC}, courses[1])
}

func TestParserMissingColumn(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Code", "Grade"},
		{"MTH101", "A"},
	})

	_, err := NewParser().Parse(context.Background(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column: units")
}

func TestParserHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Code", "Units", "Grade"},
	})

	_, err := NewParser().Parse(context.Background(), data)
	assert.ErrorIs(t, err, errors.ErrInvalidFileFormat)
}

func TestParserBadUnits(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Code", "Units", "Grade"},
		{"MTH101", "three", "A"},
	})

	_, err := NewParser().Parse(context.Background(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParserNotAnExcelFile(t *testing.T) {
	_, err := NewParser().Parse(context.Background(), []byte("not a workbook"))
	assert.Error(t, err)
}

func TestValidatorAccepts(t *testing.T) {
	err := NewValidator().Validate(context.Background(), []model.CourseRow{
		{Code: "MTH101", Units: 3, Grade: model.GradeA},
		{Code: "GST 102", Units: 1, Grade: model.GradeF},
	})
	assert.NoError(t, err)
}

func TestValidatorRejects(t *testing.T) {
	cases := []struct {
		name  string
		row   model.CourseRow
		field string
	}{
		{"bad code", model.CourseRow{Code: "!!", Units: 3, Grade: model.GradeA}, "code"},
		{"zero units", model.CourseRow{Code: "MTH101", Units: 0, Grade: model.GradeA}, "units"},
		{"units too high", model.CourseRow{Code: "MTH101", Units: 19, Grade: model.GradeA}, "units"},
		{"bad grade", model.CourseRow{Code: "MTH101", Units: 3, Grade: "Z"}, "grade"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := NewValidator().Validate(context.Background(), []model.CourseRow{c.row})
			var verr errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, c.field, verr.Field)
		})
	}
}

func TestValidatorEmpty(t *testing.T) {
	err := NewValidator().Validate(context.Background(), nil)
	assert.ErrorIs(t, err, errors.ErrInvalidFileFormat)
}

func TestExportRoundTrip(t *testing.T) {
	transcript := Transcript{
		Semesters: []model.SemesterRecord{
			{ID: 1, Year: 1, Term: 1, TotalUnits: 5, TotalPoints: 21, GPA: 4.20},
		},
		Courses: map[int64][]model.CourseRow{
			1: {
				{Code: "MTH101", Units: 3, Grade: model.GradeA, Points: 15},
				{Code: "PHY101", Units: 2, Grade: model.GradeC, Points: 6},
			},
		},
		Overall: model.CumulativeSummary{
			Semesters: 1, TotalUnits: 5, TotalPoints: 21,
			CGPA: 4.20, Class: model.SecondClassUpper,
		},
	}

	data, err := NewExporter().Export(context.Background(), transcript)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Semesters", "Y1 S1"}, file.GetSheetList())

	rows, err := file.GetRows("Y1 S1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"MTH101", "3", "A", "15"}, rows[1])
	assert.Equal(t, []string{"PHY101", "2", "C", "6"}, rows[2])
}
