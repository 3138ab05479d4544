package excel

import (
	"context"
	"regexp"

	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

type Validator struct {
	codeRegex *regexp.Regexp
}

func NewValidator() *Validator {
	return &Validator{
		codeRegex: regexp.MustCompile(`^[A-Za-z]{2,4}[ -]?\d{3}[A-Za-z]?$`),
	}
}

func (v *Validator) Validate(ctx context.Context, courses []model.CourseRow) error {
	if len(courses) == 0 {
		return errors.ErrInvalidFileFormat
	}

	for _, course := range courses {
		if err := v.validateCourse(course); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateCourse(course model.CourseRow) error {
	if !v.codeRegex.MatchString(course.Code) {
		return errors.ValidationError{
			Field:   "code",
			Value:   course.Code,
			Message: "must look like a course code, e.g. MTH101",
		}
	}

	// Imported rows are complete courses; the zero "unset" sentinel is an
	// in-app editing state, not a spreadsheet one.
	if course.Units < 1 || course.Units > 18 {
		return errors.ValidationError{
			Field:   "units",
			Value:   course.Units,
			Message: "must be between 1 and 18",
		}
	}

	if !course.Grade.Valid() {
		return errors.ValidationError{
			Field:   "grade",
			Value:   string(course.Grade),
			Message: "must be one of A, B, C, D, E, F",
		}
	}

	return nil
}
