package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookgoblin/internal/entities"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

func intPtr(i int) *int { return &i }

func datePtr(s string) *entities.Date {
	d := entities.MustParseDate(s)
	return &d
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %v", err)
	return verr.Fields
}

func TestValidator_Book(t *testing.T) {
	v := validation.New()

	isbn := "97801234567890123456"
	assert.NoError(t, v.Validate(entities.Book{Title: "Dune", Author: "Frank Herbert", ISBN: &isbn}))

	tooLong := isbn + "7"
	tests := []struct {
		name  string
		book  entities.Book
		field string
		msg   string
	}{
		{"missing title", entities.Book{Author: "A"}, "title", "is required"},
		{"missing author", entities.Book{Title: "T"}, "author", "is required"},
		{"long title", entities.Book{Title: strings.Repeat("x", 256), Author: "A"}, "title", "must not exceed 255 characters"},
		{"long author", entities.Book{Title: "T", Author: strings.Repeat("x", 101)}, "author", "must not exceed 100 characters"},
		{"long isbn", entities.Book{Title: "T", Author: "A", ISBN: &tooLong}, "isbn", "must not exceed 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldErrors(t, v.Validate(tt.book))
			assert.Equal(t, tt.msg, fields[tt.field])
		})
	}
}

func TestValidator_Tag(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(entities.Tag{Name: strings.Repeat("x", 50)}))
	assert.Equal(t, "is required", fieldErrors(t, v.Validate(entities.Tag{}))["name"])
	assert.Contains(t, fieldErrors(t, v.Validate(entities.Tag{Name: strings.Repeat("x", 51)})), "name")
}

func TestValidator_UserBook(t *testing.T) {
	v := validation.New()

	valid := entities.UserBook{
		BookID:        7,
		DateAdded:     entities.MustParseDate("2024-01-01"),
		CurrentStatus: entities.StatusDNF,
	}
	assert.NoError(t, v.Validate(valid))

	missingDate := valid
	missingDate.DateAdded = entities.Date{}
	assert.Equal(t, "is required", fieldErrors(t, v.Validate(missingDate))["date_added"])

	badStatus := valid
	badStatus.CurrentStatus = "abandoned"
	assert.Equal(t,
		"must be one of: unread, reading, finished, dnf",
		fieldErrors(t, v.Validate(badStatus))["current_status"])

	noStatus := valid
	noStatus.CurrentStatus = ""
	assert.Equal(t, "is required", fieldErrors(t, v.Validate(noStatus))["current_status"])
}

func TestValidator_ReadingLog(t *testing.T) {
	v := validation.New()

	base := entities.ReadingLog{
		UserBookID: 1,
		StartDate:  entities.MustParseDate("2024-02-10"),
	}

	tests := []struct {
		name   string
		mutate func(*entities.ReadingLog)
		field  string
	}{
		{"valid minimal", func(*entities.ReadingLog) {}, ""},
		{"end on start day", func(l *entities.ReadingLog) { l.EndDate = datePtr("2024-02-10") }, ""},
		{"end after start", func(l *entities.ReadingLog) { l.EndDate = datePtr("2024-03-01") }, ""},
		{"rating bounds", func(l *entities.ReadingLog) { l.Rating = intPtr(5) }, ""},
		{"missing start", func(l *entities.ReadingLog) { l.StartDate = entities.Date{} }, "start_date"},
		{"end before start", func(l *entities.ReadingLog) { l.EndDate = datePtr("2024-02-09") }, "end_date"},
		{"rating too low", func(l *entities.ReadingLog) { l.Rating = intPtr(0) }, "rating"},
		{"rating too high", func(l *entities.ReadingLog) { l.Rating = intPtr(6) }, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := base
			tt.mutate(&log)
			err := v.Validate(log)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &validation.Error{
		Message: "validation failed",
		Fields:  map[string]string{"title": "is required", "author": "is required"},
	}
	assert.Equal(t, "validation failed: author is required; title is required", err.Error())
}
