package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/hamedazad/synurix/internal/model"
)

var testDB *DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	var err error
	testTeardown, testDB, err = GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if testTeardown != nil {
		_ = testTeardown(ctx)
	}
	os.Exit(code)
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()
	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
}

func TestMigrateIsIdempotent(t *testing.T) {
	// NewDBInstance already migrated once; both repeats must be no-ops.
	assert.NoError(t, testDB.Migrate())
	assert.NoError(t, testDB.Migrate())

	for _, table := range []string{
		"career_applications",
		"cooperation_applications",
		"enterprise_projects",
		"project_submissions",
		"career_submissions",
	} {
		assert.True(t, testDB.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestInsertCareerApplicationAssignsIDAndTimestamp(t *testing.T) {
	app := model.CareerApplication{
		FullName:          "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "+10000000000",
		Location:          "Berlin",
		RoleOfInterest:    "AI Engineer",
		YearsOfExperience: 5,
		KeySkills:         "Python, ML",
		Motivation:        "I care deeply about applied machine learning and want to ship real products.",
		Availability:      "Full-time",
	}

	err := testDB.InsertCareerApplication(context.Background(), &app)
	assert.NoError(t, err)
	assert.NotZero(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero(), "created_at must be assigned at insert time")

	apps, err := testDB.ListCareerApplications(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", apps[0].FullName, "newest row should come first")
}

func TestListCooperationApplicationsNewestFirst(t *testing.T) {
	first := model.CooperationApplication{
		FullName:   "Earlier Person",
		Email:      "earlier@example.com",
		Role:       "Other",
		Skills:     "Rust, distributed systems",
		Motivation: "Interested in a long term cooperation.",
	}
	assert.NoError(t, testDB.InsertCooperationApplication(context.Background(), &first))

	second := model.CooperationApplication{
		FullName:   "Later Person",
		Email:      "later@example.com",
		Role:       "ML Engineer",
		Skills:     "PyTorch, MLOps pipelines",
		Motivation: "Want to contribute to model serving work.",
	}
	assert.NoError(t, testDB.InsertCooperationApplication(context.Background(), &second))

	apps, err := testDB.ListCooperationApplications(context.Background())
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(apps), 2)

	posFirst, posSecond := -1, -1
	for i, a := range apps {
		if a.ID == first.ID {
			posFirst = i
		}
		if a.ID == second.ID {
			posSecond = i
		}
	}
	assert.NotEqual(t, -1, posFirst)
	assert.NotEqual(t, -1, posSecond)
	assert.Less(t, posSecond, posFirst, "row inserted later must sort before the earlier one")
}

func TestLegacyProjectSubmissionRoundTrip(t *testing.T) {
	sub := model.ProjectSubmission{
		CompanyName:          "Acme Corp",
		Industry:             "Manufacturing",
		CompanySize:          "201-1000",
		ContactPerson:        "Eve Adams",
		Email:                "eve@acme.example",
		ProjectTitle:         "Defect detection",
		ProblemDescription:   "Detect surface defects on the production line from camera feeds.",
		AIRequirements:       `["Computer Vision"]`,
		EstimatedTimeline:    "4 months",
		DataAvailability:     "Yes",
		SecurityRequirements: "On-premise deployment only.",
	}
	assert.NoError(t, testDB.InsertProjectSubmission(context.Background(), &sub))
	assert.NotZero(t, sub.ID)

	subs, err := testDB.ListProjectSubmissions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, sub.ID, subs[0].ID)
	assert.Equal(t, `["Computer Vision"]`, subs[0].AIRequirements)
}

func TestInsertCareerSubmissionWriteOnly(t *testing.T) {
	sub := model.CareerSubmission{
		FullName:   "Frank Green",
		Email:      "frank@example.com",
		Role:       "DevOps Engineer",
		Skills:     "Kubernetes, Terraform, CI/CD",
		Motivation: "Happy to help with infrastructure work.",
	}
	assert.NoError(t, testDB.InsertCareerSubmission(context.Background(), &sub))
	assert.NotZero(t, sub.ID)

	var count int64
	assert.NoError(t, testDB.Model(&model.CareerSubmission{}).Count(&count).Error)
	assert.GreaterOrEqual(t, count, int64(1))
}

func TestConcurrentInsertsKeepIDsUnique(t *testing.T) {
	const n = 20

	var before int64
	assert.NoError(t, testDB.Model(&model.CareerApplication{}).Count(&before).Error)

	var wg sync.WaitGroup
	ids := make(chan uint, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app := model.CareerApplication{
				FullName:          fmt.Sprintf("Concurrent User %d", i),
				Email:             fmt.Sprintf("concurrent%d@example.com", i),
				Phone:             "+10000000000",
				Location:          "Remote",
				RoleOfInterest:    "Software Engineer",
				YearsOfExperience: i % 40,
				KeySkills:         "Go, concurrency, testing",
				Motivation:        "Submitting concurrently to make sure the storage layer never loses a write.",
				Availability:      "Remote",
			}
			if err := testDB.InsertCareerApplication(context.Background(), &app); err == nil {
				ids <- app.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate surrogate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n, "every concurrent write must land")

	var after int64
	assert.NoError(t, testDB.Model(&model.CareerApplication{}).Count(&after).Error)
	assert.Equal(t, before+n, after)
}

func TestOperationTimeoutSurfacesAsStorageError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testDB.ListCareerApplications(ctx)
	assert.Error(t, err)
	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestCloseSecondInstance(t *testing.T) {
	db, err := NewDBInstance(testDB.Config)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())
}
