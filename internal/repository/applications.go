package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/blockedby/jobtrack/internal/database"
	"github.com/blockedby/jobtrack/internal/logger"
	"github.com/blockedby/jobtrack/internal/models"
)

// ApplicationsRepository handles job application CRUD operations. Each call
// is a single self-contained statement; sequences of calls are not atomic
// with respect to a concurrent writer (accepted for the single-user design).
type ApplicationsRepository struct {
	db  *database.DB
	log *logger.Logger
}

// NewApplicationsRepository creates a new applications repository.
func NewApplicationsRepository(db *database.DB, log *logger.Logger) *ApplicationsRepository {
	return &ApplicationsRepository{
		db:  db,
		log: log,
	}
}

// Insert stores a new application and returns its assigned id. The ID field
// of the argument is ignored; ids are handed out by the database only.
func (r *ApplicationsRepository) Insert(ctx context.Context, app *models.JobApplication) (int64, error) {
	result, err := r.db.Pool.ExecContext(ctx, `
		INSERT INTO job_applications (date, cv_path, company, position, status, location, salary_min, salary_max)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, encodeDate(app.Date), app.CV, app.Company, app.Position, app.Status.Encode(),
		app.Location, int64(app.Salary.Min), int64(app.Salary.Max),
	)
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}

	r.log.Info().
		Int64("id", id).
		Str("company", app.Company).
		Str("status", app.Status.Encode()).
		Msg("inserted application")

	return id, nil
}

// GetAll returns every stored application, most recently created first.
// An empty store yields an empty slice.
func (r *ApplicationsRepository) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	rows, err := r.db.Pool.QueryContext(ctx, selectColumns+`
		FROM job_applications
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("get all applications: %w", err)
	}
	defer rows.Close()

	apps := []models.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get all applications: %w", err)
	}

	return apps, nil
}

// GetByID returns the application with the given id, or a NotFoundError.
func (r *ApplicationsRepository) GetByID(ctx context.Context, id int64) (models.JobApplication, error) {
	row := r.db.Pool.QueryRowContext(ctx, selectColumns+`
		FROM job_applications
		WHERE id = ?
	`, id)

	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobApplication{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.JobApplication{}, err
	}
	return app, nil
}

// Update overwrites every mutable field of the row matching the record's id.
// A record that was never persisted (nil id) and an id with no matching row
// both fail with a NotFoundError; sqlite reports a no-op match as zero rows
// affected, not as an error, so the count is checked explicitly.
func (r *ApplicationsRepository) Update(ctx context.Context, app *models.JobApplication) error {
	if app.ID == nil {
		return &NotFoundError{ID: 0}
	}
	id := *app.ID

	result, err := r.db.Pool.ExecContext(ctx, `
		UPDATE job_applications
		SET date = ?, cv_path = ?, company = ?, position = ?, status = ?, location = ?, salary_min = ?, salary_max = ?
		WHERE id = ?
	`, encodeDate(app.Date), app.CV, app.Company, app.Position, app.Status.Encode(),
		app.Location, int64(app.Salary.Min), int64(app.Salary.Max), id,
	)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}

	r.log.Info().
		Int64("id", id).
		Str("status", app.Status.Encode()).
		Msg("updated application")

	return nil
}

// Delete removes the row with the given id, or fails with a NotFoundError.
func (r *ApplicationsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.ExecContext(ctx, `DELETE FROM job_applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}

	r.log.Info().Int64("id", id).Msg("deleted application")
	return nil
}

// ClearAll unconditionally removes every stored application. Clearing an
// already empty store succeeds.
func (r *ApplicationsRepository) ClearAll(ctx context.Context) error {
	_, err := r.db.Pool.ExecContext(ctx, `DELETE FROM job_applications`)
	if err != nil {
		return fmt.Errorf("clear applications: %w", err)
	}

	r.log.Info().Msg("cleared all applications")
	return nil
}

const selectColumns = `
		SELECT id, date, cv_path, company, position, status, location, salary_min, salary_max`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanApplication reads one row column by column and rebuilds the domain
// record, re-parsing the stored date and status texts. Bad stored text fails
// the read with a DecodeError.
func scanApplication(row scanner) (models.JobApplication, error) {
	var (
		id        int64
		dateStr   sql.NullString
		cvPath    sql.NullString
		company   string
		position  string
		statusStr string
		location  string
		salaryMin int64
		salaryMax int64
	)

	if err := row.Scan(&id, &dateStr, &cvPath, &company, &position, &statusStr, &location, &salaryMin, &salaryMax); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JobApplication{}, err
		}
		return models.JobApplication{}, fmt.Errorf("scan application: %w", err)
	}

	var date *time.Time
	if dateStr.Valid {
		parsed, err := time.Parse(models.DateLayout, dateStr.String)
		if err != nil {
			return models.JobApplication{}, &DecodeError{Value: dateStr.String, Cause: errors.New("invalid date format")}
		}
		date = &parsed
	}

	status, err := models.ParseStatus(statusStr)
	if err != nil {
		return models.JobApplication{}, &DecodeError{Value: statusStr, Cause: err}
	}

	var cv *string
	if cvPath.Valid {
		cv = &cvPath.String
	}

	return models.JobApplication{
		ID:       &id,
		Date:     date,
		CV:       cv,
		Company:  company,
		Position: position,
		Status:   status,
		Location: location,
		// clamp instead of failing: values outside uint32 range cannot come
		// from the write path and mean the row was edited out of band
		Salary: models.SalaryRange{
			Min: clampSalary(salaryMin),
			Max: clampSalary(salaryMax),
		},
	}, nil
}

func clampSalary(v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		return 0
	}
	return uint32(v)
}

// encodeDate renders the date column value, nil for an unset date.
func encodeDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(models.DateLayout)
	return &s
}
