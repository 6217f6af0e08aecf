package intake

import (
	"context"

	"github.com/hamedazad/synurix/internal/database"
	"github.com/hamedazad/synurix/internal/model"
)

// Service validates submissions and writes exactly one row per accepted
// request. Validation always completes before the storage call, so a
// rejected submission never leaves a partial write.
type Service struct {
	db *database.DBinstanceStruct
}

// NewService constructs an intake service bound to the given storage engine.
func NewService(db *database.DBinstanceStruct) *Service {
	return &Service{db: db}
}

// SubmitCareerApplication validates and persists a careers form submission.
// The returned record carries the assigned id and timestamp.
func (s *Service) SubmitCareerApplication(ctx context.Context, req CareerApplicationRequest) (*model.CareerApplication, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}
	app := req.ToModel()
	if err := s.db.InsertCareerApplication(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// SubmitCooperationApplication validates and persists a cooperation form submission.
func (s *Service) SubmitCooperationApplication(ctx context.Context, req CooperationRequest) (*model.CooperationApplication, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}
	app := req.ToModel()
	if err := s.db.InsertCooperationApplication(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// SubmitEnterpriseProject validates and persists an enterprise project submission.
func (s *Service) SubmitEnterpriseProject(ctx context.Context, req EnterpriseProjectRequest) (*model.EnterpriseProject, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}
	project := req.ToModel()
	if err := s.db.InsertEnterpriseProject(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// SubmitLegacyProject persists a project through the alternate
// /api/submit-project path into the legacy project_submissions table.
func (s *Service) SubmitLegacyProject(ctx context.Context, req EnterpriseProjectRequest) (*model.ProjectSubmission, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}
	sub, err := req.ToLegacyModel()
	if err != nil {
		return nil, &database.StorageError{Op: "encode project submission", Err: err}
	}
	if err := s.db.InsertProjectSubmission(ctx, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// SubmitLegacyCooperate persists a cooperation request through the alternate
// /api/cooperate path into the legacy career_submissions table.
func (s *Service) SubmitLegacyCooperate(ctx context.Context, req CooperationRequest) (*model.CareerSubmission, error) {
	if verr := Validate(req); verr != nil {
		return nil, verr
	}
	sub := req.ToLegacyModel()
	if err := s.db.InsertCareerSubmission(ctx, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
