// Package forms translates free-text input into domain records. It is the
// caller-facing validation boundary: the store itself never validates what
// a well-formed record carries.
package forms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/blockedby/jobtrack/internal/models"
)

// ValidationError reports invalid free-text input, naming the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Form is the free-text shape of an application, one string per input box.
// Empty date, salary, round and amount fields fall back to their defaults;
// company, position and location pass through unconditionally.
type Form struct {
	Company   string
	Position  string
	Location  string
	Date      string // YYYY-MM-DD, empty for none
	CV        string // file path, empty for none
	SalaryMin string
	SalaryMax string
	Status    string // applied | interview | offer | rejected
	Round     string // interview round, used when Status is interview
	Amount    string // offer amount, used when Status is offer
}

// ToApplication builds a domain record from the form. The first invalid
// field aborts with a ValidationError naming it.
func (f *Form) ToApplication() (models.JobApplication, error) {
	app := models.JobApplication{
		Company:  f.Company,
		Position: f.Position,
		Location: f.Location,
	}

	if f.Date != "" {
		date, err := time.Parse(models.DateLayout, f.Date)
		if err != nil {
			return models.JobApplication{}, &ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"}
		}
		app.Date = &date
	}

	if f.CV != "" {
		cv := f.CV
		app.CV = &cv
	}

	min, err := parseSalary("salary_min", f.SalaryMin)
	if err != nil {
		return models.JobApplication{}, err
	}
	max, err := parseSalary("salary_max", f.SalaryMax)
	if err != nil {
		return models.JobApplication{}, err
	}
	app.Salary = models.SalaryRange{Min: min, Max: max}

	status, err := f.parseStatus()
	if err != nil {
		return models.JobApplication{}, err
	}
	app.Status = status

	return app, nil
}

func (f *Form) parseStatus() (models.Status, error) {
	switch f.Status {
	case "", "applied":
		return models.Applied(), nil
	case "rejected":
		return models.Rejected(), nil
	case "interview":
		round, err := strconv.ParseUint(f.Round, 10, 8)
		if err != nil {
			return models.Status{}, &ValidationError{Field: "round", Message: "must be a number between 0 and 255"}
		}
		return models.Interview(uint8(round)), nil
	case "offer":
		amount, err := strconv.ParseInt(f.Amount, 10, 32)
		if err != nil {
			return models.Status{}, &ValidationError{Field: "amount", Message: "must be a number"}
		}
		return models.Offer(int32(amount)), nil
	default:
		return models.Status{}, &ValidationError{Field: "status", Message: "must be applied, interview, offer or rejected"}
	}
}

func parseSalary(field, raw string) (uint32, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a non-negative number"}
	}
	return uint32(v), nil
}
