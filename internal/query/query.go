// Package query supplies the admin view with materialized submission lists.
package query

import (
	"context"
	"sort"

	"github.com/hamedazad/synurix/internal/database"
	"github.com/hamedazad/synurix/internal/model"
)

// Service reads submissions back for the admin view. It never mutates
// anything; all writes go through the intake service.
type Service struct {
	db *database.DBinstanceStruct
}

// NewService constructs a query service bound to the given storage engine.
func NewService(db *database.DBinstanceStruct) *Service {
	return &Service{db: db}
}

// ListCareerApplications returns all career applications, newest first.
func (s *Service) ListCareerApplications(ctx context.Context) ([]model.CareerApplication, error) {
	return s.db.ListCareerApplications(ctx)
}

// ListCooperationApplications returns all cooperation applications, newest first.
func (s *Service) ListCooperationApplications(ctx context.Context) ([]model.CooperationApplication, error) {
	return s.db.ListCooperationApplications(ctx)
}

// ListProjects merges the canonical enterprise_projects table with the legacy
// project_submissions table into one view in the canonical shape, ordered by
// creation time descending. Ties on the timestamp break canonical-before-
// legacy, then higher id first, so the order is deterministic. A legacy row
// whose AI requirements fail to decode surfaces as an error; rows are never
// silently dropped.
func (s *Service) ListProjects(ctx context.Context) ([]model.EnterpriseProject, error) {
	canonical, err := s.db.ListEnterpriseProjects(ctx)
	if err != nil {
		return nil, err
	}
	legacy, err := s.db.ListProjectSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	type row struct {
		project model.EnterpriseProject
		legacy  bool
	}

	rows := make([]row, 0, len(canonical)+len(legacy))
	for _, p := range canonical {
		rows = append(rows, row{project: p})
	}
	for _, sub := range legacy {
		p, err := sub.ToEnterpriseProject()
		if err != nil {
			return nil, &database.StorageError{Op: "decode legacy project submission", Err: err}
		}
		rows = append(rows, row{project: p, legacy: true})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.project.CreatedAt.Equal(b.project.CreatedAt) {
			return a.project.CreatedAt.After(b.project.CreatedAt)
		}
		if a.legacy != b.legacy {
			return !a.legacy
		}
		return a.project.ID > b.project.ID
	})

	merged := make([]model.EnterpriseProject, len(rows))
	for i, r := range rows {
		merged[i] = r.project
	}
	return merged, nil
}

// Summary reports per-table submission counts for the admin landing page.
func (s *Service) Summary(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for name, m := range map[string]interface{}{
		"career_applications":      &model.CareerApplication{},
		"cooperation_applications": &model.CooperationApplication{},
		"enterprise_projects":      &model.EnterpriseProject{},
		"project_submissions":      &model.ProjectSubmission{},
		"career_submissions":       &model.CareerSubmission{},
	} {
		var count int64
		if err := s.db.WithContext(ctx).Model(m).Count(&count).Error; err != nil {
			return nil, &database.StorageError{Op: "count " + name, Err: err}
		}
		counts[name] = count
	}
	return counts, nil
}
