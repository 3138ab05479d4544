package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Chinex4/unipaddy-app/internal/model"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Transcript holds everything the export needs, fetched by the caller so the
// exporter stays free of storage concerns.
type Transcript struct {
	Semesters []model.SemesterRecord
	Courses   map[int64][]model.CourseRow
	Overall   model.CumulativeSummary
}

// Export writes one "Semesters" overview sheet plus one sheet per finalized
// (year, term) with its course rows, and returns the workbook bytes.
func (e *Exporter) Export(ctx context.Context, t Transcript) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	overview := "Semesters"
	if err := file.SetSheetName("Sheet1", overview); err != nil {
		return nil, fmt.Errorf("failed to create overview sheet: %w", err)
	}

	overviewHeader := []interface{}{"Year", "Term", "Total Units", "Total Points", "GPA"}
	if err := file.SetSheetRow(overview, "A1", &overviewHeader); err != nil {
		return nil, fmt.Errorf("failed to write overview header: %w", err)
	}

	for i, rec := range t.Semesters {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{rec.Year, rec.Term, rec.TotalUnits, rec.TotalPoints, rec.GPA}
		if err := file.SetSheetRow(overview, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write overview row: %w", err)
		}

		if err := e.writeSemesterSheet(file, rec, t.Courses[rec.ID]); err != nil {
			return nil, err
		}
	}

	summaryCell := fmt.Sprintf("A%d", len(t.Semesters)+3)
	summary := []interface{}{
		"CGPA", t.Overall.CGPA, string(t.Overall.Class),
		t.Overall.TotalUnits, t.Overall.TotalPoints,
	}
	if err := file.SetSheetRow(overview, summaryCell, &summary); err != nil {
		return nil, fmt.Errorf("failed to write summary row: %w", err)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeSemesterSheet(file *excelize.File, rec model.SemesterRecord, courses []model.CourseRow) error {
	name := fmt.Sprintf("Y%d S%d", rec.Year, rec.Term)
	if _, err := file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	header := []interface{}{"Code", "Units", "Grade", "Points"}
	if err := file.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}

	for i, c := range courses {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{c.Code, c.Units, string(c.Grade), c.Points}
		if err := file.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write course row for %s: %w", name, err)
		}
	}

	return nil
}
