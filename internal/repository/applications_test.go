package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockedby/jobtrack/internal/database"
	"github.com/blockedby/jobtrack/internal/logger"
	"github.com/blockedby/jobtrack/internal/models"
)

func newTestRepo(t *testing.T) *ApplicationsRepository {
	t.Helper()

	db, err := database.New(context.Background(), database.InMemory)
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() { db.Close() })

	return NewApplicationsRepository(db, logger.Nop())
}

func newTestApplication() models.JobApplication {
	date := models.Date(2024, time.January, 15)
	return models.JobApplication{
		Date:     &date,
		Company:  "Test Corp",
		Position: "Software Engineer",
		Location: "Remote",
		Status:   models.Applied(),
		Salary:   models.SalaryRange{Min: 80000, Max: 120000},
	}
}

func assertEqualIgnoringID(t *testing.T, want, got models.JobApplication) {
	t.Helper()
	assert.Equal(t, want.Company, got.Company)
	assert.Equal(t, want.Position, got.Position)
	assert.Equal(t, want.Location, got.Location)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.Salary, got.Salary)
	assert.Equal(t, want.Date, got.Date)
	assert.Equal(t, want.CV, got.CV)
}

func TestApplicationsRepository_InsertAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	app := newTestApplication()

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ID)
	assert.Equal(t, id, *got.ID)
	assertEqualIgnoringID(t, app, got)
}

func TestApplicationsRepository_InsertIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	stale := int64(999)
	app := newTestApplication()
	app.ID = &stale

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)
	assert.NotEqual(t, stale, id, "the store assigns ids, caller ids are ignored")

	_, err = repo.GetByID(ctx, stale)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestApplicationsRepository_DuplicatesAllowed(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app1 := newTestApplication()
	app2 := newTestApplication()

	id1, err := repo.Insert(ctx, &app1)
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, &app2)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)

	apps, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestApplicationsRepository_GetAll_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	apps, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestApplicationsRepository_GetAll_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := newTestApplication()
	second := newTestApplication()
	second.Company = "Another Corp"

	_, err := repo.Insert(ctx, &first)
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, &second)
	require.NoError(t, err)

	apps, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, id2, *apps[0].ID, "most recently created row comes first")
	assert.Equal(t, "Another Corp", apps[0].Company)
}

func TestApplicationsRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(999), nf.ID)
}

func TestApplicationsRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	app := newTestApplication()

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)

	app.ID = &id
	app.Company = "Updated Corp"
	app.Status = models.Interview(1)
	require.NoError(t, repo.Update(ctx, &app))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Updated Corp", got.Company)
	assert.Equal(t, models.Interview(1), got.Status)
}

func TestApplicationsRepository_Update_WithoutID(t *testing.T) {
	repo := newTestRepo(t)
	app := newTestApplication()

	err := repo.Update(context.Background(), &app)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(0), nf.ID)
}

func TestApplicationsRepository_Update_Nonexistent(t *testing.T) {
	repo := newTestRepo(t)

	id := int64(999)
	app := newTestApplication()
	app.ID = &id

	err := repo.Update(context.Background(), &app)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(999), nf.ID)
}

func TestApplicationsRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	app := newTestApplication()

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, id, nf.ID)
}

func TestApplicationsRepository_Delete_Nonexistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete(context.Background(), 999)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(999), nf.ID)
}

func TestApplicationsRepository_ClearAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 2; i++ {
		app := newTestApplication()
		_, err := repo.Insert(ctx, &app)
		require.NoError(t, err)
	}

	require.NoError(t, repo.ClearAll(ctx))

	apps, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)

	// clearing an empty store succeeds too
	require.NoError(t, repo.ClearAll(ctx))
}

func TestApplicationsRepository_StatusPersistence(t *testing.T) {
	statuses := []models.Status{
		models.Applied(),
		models.Interview(1),
		models.Interview(3),
		models.Offer(95000),
		models.Offer(-1),
		models.Rejected(),
	}

	ctx := context.Background()
	repo := newTestRepo(t)

	for _, status := range statuses {
		t.Run(status.Encode(), func(t *testing.T) {
			app := newTestApplication()
			app.Status = status

			id, err := repo.Insert(ctx, &app)
			require.NoError(t, err)

			got, err := repo.GetByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
		})
	}
}

func TestApplicationsRepository_CVPath(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cv := "path/to/resume.pdf"
	app := newTestApplication()
	app.CV = &cv

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.CV)
	assert.Equal(t, cv, *got.CV)
}

func TestApplicationsRepository_NilDate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	app := newTestApplication()
	app.Date = nil

	id, err := repo.Insert(ctx, &app)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Date)
}

func TestApplicationsRepository_OfferScenario(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	date := models.Date(2024, time.January, 15)
	app := models.JobApplication{
		Date:     &date,
		Company:  "TechCorp",
		Position: "Engineer",
		Location: "Remote",
		Status:   models.Offer(95000),
		Salary:   models.SalaryRange{Min: 80000, Max: 120000},
	}

	_, err := repo.Insert(ctx, &app)
	require.NoError(t, err)

	apps, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.Offer(95000), apps[0].Status)
	assert.Equal(t, "80000 - 120000", apps[0].Salary.String())
}

func TestApplicationsRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	app := newTestApplication()

	db1, err := database.New(ctx, path)
	require.NoError(t, err)
	id, err := NewApplicationsRepository(db1, logger.Nop()).Insert(ctx, &app)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	db2, err := database.New(ctx, path)
	require.NoError(t, err)
	defer db2.Close()

	apps, err := NewApplicationsRepository(db2, logger.Nop()).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, id, *apps[0].ID, "id stays stable across reopen")
	assertEqualIgnoringID(t, app, apps[0])
}

func TestApplicationsRepository_SharedHandles(t *testing.T) {
	ctx := context.Background()
	db, err := database.New(ctx, database.InMemory)
	require.NoError(t, err)
	defer db.Close()

	writer := NewApplicationsRepository(db, logger.Nop())
	reader := NewApplicationsRepository(db, logger.Nop())

	app := newTestApplication()
	id, err := writer.Insert(ctx, &app)
	require.NoError(t, err)

	got, err := reader.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, app.Company, got.Company)
}

func TestApplicationsRepository_CorruptStatus(t *testing.T) {
	ctx := context.Background()
	db, err := database.New(ctx, database.InMemory)
	require.NoError(t, err)
	defer db.Close()
	repo := NewApplicationsRepository(db, logger.Nop())

	// bypass the write path, as out-of-band edits would
	result, err := db.Pool.ExecContext(ctx, `
		INSERT INTO job_applications (company, position, status, location)
		VALUES ('Corrupt Corp', 'Engineer', 'ghosted', 'Remote')
	`)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "ghosted")

	// the corrupt row poisons fetch-all too, no partial results
	_, err = repo.GetAll(ctx)
	assert.ErrorAs(t, err, &decodeErr)
}

func TestApplicationsRepository_CorruptDate(t *testing.T) {
	ctx := context.Background()
	db, err := database.New(ctx, database.InMemory)
	require.NoError(t, err)
	defer db.Close()
	repo := NewApplicationsRepository(db, logger.Nop())

	result, err := db.Pool.ExecContext(ctx, `
		INSERT INTO job_applications (date, company, position, status, location)
		VALUES ('not-a-date', 'Corrupt Corp', 'Engineer', 'applied', 'Remote')
	`)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "not-a-date")
}

func TestApplicationsRepository_SalaryClampOnRead(t *testing.T) {
	ctx := context.Background()
	db, err := database.New(ctx, database.InMemory)
	require.NoError(t, err)
	defer db.Close()
	repo := NewApplicationsRepository(db, logger.Nop())

	// negative and beyond-uint32 values cannot come from the write path;
	// reads clamp them to zero instead of failing
	result, err := db.Pool.ExecContext(ctx, `
		INSERT INTO job_applications (company, position, status, location, salary_min, salary_max)
		VALUES ('Corrupt Corp', 'Engineer', 'applied', 'Remote', -5, 99999999999)
	`)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SalaryRange{Min: 0, Max: 0}, got.Salary)
}
