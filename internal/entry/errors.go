package entry

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures. They are returned wrapped in *ValidationError; match with errors.Is.
var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidDate   = errors.New("date must be a calendar day in YYYY-MM-DD format")
	ErrDuplicateDate = errors.New("an entry for this date already exists")
)

// ValidationError describes why a candidate was rejected.
// The collection is never modified when one is returned.
type ValidationError struct {
	Err    error
	Fields []string // set for ErrMissingField
	Date   string   // set for ErrInvalidDate and ErrDuplicateDate
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Fields, ", "))
	case e.Date != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Date)
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a recoverable input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
