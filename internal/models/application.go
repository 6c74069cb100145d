// Package models holds the job application domain model. It performs no I/O;
// the persistence layer in internal/repository maps these values to rows.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the stored calendar-date format (ISO 8601 date).
const DateLayout = "2006-01-02"

// SalaryRange is a caller-supplied salary bracket. No min <= max invariant
// is enforced; the pair is stored exactly as given.
type SalaryRange struct {
	Min uint32
	Max uint32
}

// String renders the canonical "<min> - <max>" form.
func (r SalaryRange) String() string {
	return fmt.Sprintf("%d - %d", r.Min, r.Max)
}

// JobApplication is a single tracked application. Field mutation has no
// effect on storage until an explicit repository update; the repository is
// the sole authority for ID.
type JobApplication struct {
	// ID is nil until the record is persisted.
	ID *int64

	// Date is the application date, nil when unknown.
	Date *time.Time

	// CV is an optional path to the resume file. Stored as text,
	// never checked for existence.
	CV *string

	Company  string
	Position string
	Status   Status
	Location string
	Salary   SalaryRange
}

// NewApplication returns an unsaved application dated today with Applied
// status and an empty salary range.
func NewApplication() JobApplication {
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return JobApplication{Date: &date}
}

// Date builds a calendar date for the application, normalized to UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
