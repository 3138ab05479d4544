package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGrade       = errors.New("invalid grade letter")
	ErrInvalidKey         = errors.New("invalid semester key")
	ErrInvalidFileFormat  = errors.New("invalid file format")
	ErrStorageUnavailable = errors.New("ledger storage unavailable")
	ErrSemesterNotFound   = errors.New("semester not found")
)

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}
