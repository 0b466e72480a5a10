package option

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates a malformed option payload from the data source.
var ErrValidation = errors.New("option: invalid payload")

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string // JSON path of the offending field, e.g. "Record.meetingsFaculty[0].meetingTime.beginTime"
	Rule  string // failed rule, e.g. "required" or "hhmm"
	Param string // rule parameter, if any
	Value any    // offending value
}

// String renders "field: rule=param".
func (f FieldError) String() string {
	if f.Param == "" {
		return fmt.Sprintf("%s: %s", f.Field, f.Rule)
	}

	return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
}

// ValidationError is returned for malformed payloads. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Source string       // record identity or payload origin
	Fields []FieldError // offending fields; empty when the payload did not decode
	Err    error        // underlying decode error, if any
}

// Error implements error.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	if e.Source != "" {
		b.WriteString(" (")
		b.WriteString(e.Source)
		b.WriteByte(')')
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	for i, f := range e.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.String())
	}

	return b.String()
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Unwrap exposes the underlying decode error.
func (e *ValidationError) Unwrap() error { return e.Err }

// newValidationError converts validator output into a *ValidationError.
func newValidationError(source string, err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Source: source, Err: err}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}

	return &ValidationError{Source: source, Fields: fields}
}
