package excel

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads course rows from the first worksheet. Expected header columns:
// code, units, grade (case-insensitive). Points are recomputed downstream,
// any points column in the sheet is ignored.
func (p *Parser) Parse(ctx context.Context, data []byte) ([]model.CourseRow, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ErrInvalidFileFormat
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	if len(rows) < 2 { // Header + at least one data row
		return nil, errors.ErrInvalidFileFormat
	}

	header := rows[0]
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	requiredColumns := []string{"code", "units", "grade"}
	for _, col := range requiredColumns {
		if _, exists := columnMap[col]; !exists {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var courses []model.CourseRow
	for i, row := range rows[1:] { // Skip header
		if len(row) == 0 {
			continue // Skip blank rows
		}

		course, err := p.parseRow(row, columnMap)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+2, err)
		}

		courses = append(courses, *course)
	}

	return courses, nil
}

func (p *Parser) parseRow(row []string, columnMap map[string]int) (*model.CourseRow, error) {
	getValue := func(colName string) string {
		if idx, exists := columnMap[colName]; exists && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	code := getValue("code")
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}

	unitsStr := getValue("units")
	if unitsStr == "" {
		return nil, fmt.Errorf("units is required")
	}
	units, err := strconv.Atoi(unitsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid units value: %s", unitsStr)
	}

	gradeStr := strings.ToUpper(getValue("grade"))
	if gradeStr == "" {
		return nil, fmt.Errorf("grade is required")
	}

	return &model.CourseRow{
		Code:  code,
		Units: units,
		Grade: model.Grade(gradeStr),
	}, nil
}
