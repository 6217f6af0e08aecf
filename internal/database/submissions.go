package database

import (
	"context"
	"fmt"
	"time"

	"github.com/hamedazad/synurix/internal/model"
)

// opTimeout bounds every storage operation so a stuck connection surfaces as
// a StorageError instead of blocking the request forever.
const opTimeout = 5 * time.Second

// StorageError wraps an I/O or constraint failure from the storage layer.
// Unlike a validation failure it is potentially retryable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (d *DBinstanceStruct) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, opTimeout)
}

// InsertCareerApplication persists a validated career application. The
// surrogate id and created_at timestamp are assigned by the insert and
// written back into app.
func (d *DBinstanceStruct) InsertCareerApplication(ctx context.Context, app *model.CareerApplication) error {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	if err := d.WithContext(ctx).Create(app).Error; err != nil {
		return &StorageError{Op: "insert career application", Err: err}
	}
	return nil
}

// InsertCooperationApplication persists a validated cooperation application.
func (d *DBinstanceStruct) InsertCooperationApplication(ctx context.Context, app *model.CooperationApplication) error {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	if err := d.WithContext(ctx).Create(app).Error; err != nil {
		return &StorageError{Op: "insert cooperation application", Err: err}
	}
	return nil
}

// InsertEnterpriseProject persists a validated enterprise project submission.
func (d *DBinstanceStruct) InsertEnterpriseProject(ctx context.Context, project *model.EnterpriseProject) error {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	if err := d.WithContext(ctx).Create(project).Error; err != nil {
		return &StorageError{Op: "insert enterprise project", Err: err}
	}
	return nil
}

// InsertProjectSubmission persists a row into the legacy project_submissions
// table. Still live because the /api/submit-project path writes here.
func (d *DBinstanceStruct) InsertProjectSubmission(ctx context.Context, submission *model.ProjectSubmission) error {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	if err := d.WithContext(ctx).Create(submission).Error; err != nil {
		return &StorageError{Op: "insert project submission", Err: err}
	}
	return nil
}

// InsertCareerSubmission persists a row into the legacy career_submissions
// table. No query path reads this table back; see DESIGN.md.
func (d *DBinstanceStruct) InsertCareerSubmission(ctx context.Context, submission *model.CareerSubmission) error {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	if err := d.WithContext(ctx).Create(submission).Error; err != nil {
		return &StorageError{Op: "insert career submission", Err: err}
	}
	return nil
}

// ListCareerApplications returns every career application, newest first.
// Ties on created_at break on id descending so the order stays deterministic.
func (d *DBinstanceStruct) ListCareerApplications(ctx context.Context) ([]model.CareerApplication, error) {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	var apps []model.CareerApplication
	if err := d.WithContext(ctx).Order("created_at DESC, id DESC").Find(&apps).Error; err != nil {
		return nil, &StorageError{Op: "list career applications", Err: err}
	}
	return apps, nil
}

// ListCooperationApplications returns every cooperation application, newest first.
func (d *DBinstanceStruct) ListCooperationApplications(ctx context.Context) ([]model.CooperationApplication, error) {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	var apps []model.CooperationApplication
	if err := d.WithContext(ctx).Order("created_at DESC, id DESC").Find(&apps).Error; err != nil {
		return nil, &StorageError{Op: "list cooperation applications", Err: err}
	}
	return apps, nil
}

// ListEnterpriseProjects returns every canonical project submission, newest first.
func (d *DBinstanceStruct) ListEnterpriseProjects(ctx context.Context) ([]model.EnterpriseProject, error) {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	var projects []model.EnterpriseProject
	if err := d.WithContext(ctx).Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, &StorageError{Op: "list enterprise projects", Err: err}
	}
	return projects, nil
}

// ListProjectSubmissions returns every legacy project submission, newest first.
// The legacy table keeps its camelCase column names, hence the quoting.
func (d *DBinstanceStruct) ListProjectSubmissions(ctx context.Context) ([]model.ProjectSubmission, error) {
	ctx, cancel := d.opContext(ctx)
	defer cancel()
	var submissions []model.ProjectSubmission
	if err := d.WithContext(ctx).Order(`"createdAt" DESC, id DESC`).Find(&submissions).Error; err != nil {
		return nil, &StorageError{Op: "list project submissions", Err: err}
	}
	return submissions, nil
}
