// Package validation checks entities against their field rules before they
// reach a store, using go-playground/validator struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookgoblin/internal/entities"
)

// Error describes every rule an input broke, keyed by JSON field name.
type Error struct {
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for the library entities.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Dates validate as their underlying time; the zero date counts as absent.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(entities.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, entities.Date{})

	v.RegisterStructValidation(readingLogDates, entities.ReadingLog{})

	return &Validator{v: v}
}

func readingLogDates(sl validator.StructLevel) {
	log := sl.Current().Interface().(entities.ReadingLog)
	if log.EndDate == nil || log.EndDate.IsZero() || log.StartDate.IsZero() {
		return
	}
	if log.EndDate.Before(log.StartDate) {
		sl.ReportError(log.EndDate, "end_date", "EndDate", "gtefield", "start_date")
	}
}

// Validate validates a struct and returns a *Error describing each failure.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}

	return &Error{Message: "validation failed", Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gtefield":
		return "must not be before " + e.Param()
	default:
		return "is invalid"
	}
}
