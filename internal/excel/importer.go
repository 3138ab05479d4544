package excel

import (
	"context"

	"github.com/Chinex4/unipaddy-app/internal/model"
)

// Importer turns an uploaded workbook into validated course rows ready for
// the draft.
type Importer interface {
	Import(ctx context.Context, data []byte) ([]model.CourseRow, error)
}

type workbookImporter struct {
	parser    *Parser
	validator *Validator
}

func NewImporter() Importer {
	return &workbookImporter{
		parser:    NewParser(),
		validator: NewValidator(),
	}
}

func (s *workbookImporter) Import(ctx context.Context, data []byte) ([]model.CourseRow, error) {
	courses, err := s.parser.Parse(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}
