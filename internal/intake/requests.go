// Package intake validates and normalizes incoming form submissions before
// they reach storage. Request field names follow the external camelCase
// convention the site's forms post; the models keep the storage naming.
package intake

import (
	"strings"

	"github.com/hamedazad/synurix/internal/model"
)

// CareerApplicationRequest is the body of POST /api/careers.
type CareerApplicationRequest struct {
	FullName          string `json:"fullName" binding:"required,min=2"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required,min=6,max=32"`
	Location          string `json:"location" binding:"required,min=2"`
	ProfileURL        string `json:"profileUrl" binding:"omitempty,url"`
	RoleOfInterest    string `json:"roleOfInterest" binding:"required,oneof='AI Engineer' 'Data Scientist' 'ML Engineer' 'Python Programmer' 'Backend Engineer' 'MLOps Engineer' 'Data Engineer' 'Software Engineer' 'Full Stack Engineer' 'DevOps Engineer' 'Frontend Engineer' 'AI Research Scientist'"`
	YearsOfExperience *int   `json:"yearsOfExperience" binding:"required,gte=0,lte=40"`
	KeySkills         string `json:"keySkills" binding:"required,min=10"`
	Motivation        string `json:"motivation" binding:"required,min=50"`
	Availability      string `json:"availability" binding:"required,oneof=Full-time Contract Remote"`
}

// ToModel converts the validated request into its storage shape. The
// created_at timestamp is left zero so the storage layer assigns it.
func (r CareerApplicationRequest) ToModel() model.CareerApplication {
	app := model.CareerApplication{
		FullName:       strings.TrimSpace(r.FullName),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		Location:       strings.TrimSpace(r.Location),
		RoleOfInterest: r.RoleOfInterest,
		KeySkills:      strings.TrimSpace(r.KeySkills),
		Motivation:     strings.TrimSpace(r.Motivation),
		Availability:   r.Availability,
	}
	if r.YearsOfExperience != nil {
		app.YearsOfExperience = *r.YearsOfExperience
	}
	if url := strings.TrimSpace(r.ProfileURL); url != "" {
		app.ProfileURL = &url
	}
	return app
}

// CooperationRequest is the body of POST /api/cooperation and of the legacy
// POST /api/cooperate, which share a field layout.
type CooperationRequest struct {
	FullName   string `json:"fullName" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required,oneof='AI Engineer' 'Data Scientist' 'ML Engineer' 'Python Programmer' 'Backend Engineer' 'MLOps Engineer' 'Data Engineer' 'Software Engineer' 'Full Stack Engineer' 'DevOps Engineer' 'Frontend Engineer' 'AI Research Scientist' 'Other'"`
	Skills     string `json:"skills" binding:"required,min=10"`
	Motivation string `json:"motivation" binding:"required,min=20"`
	ResumeLink string `json:"resumeLink" binding:"omitempty,url"`
}

// ToModel converts to the canonical cooperation_applications shape.
func (r CooperationRequest) ToModel() model.CooperationApplication {
	app := model.CooperationApplication{
		FullName:   strings.TrimSpace(r.FullName),
		Email:      strings.TrimSpace(r.Email),
		Role:       r.Role,
		Skills:     strings.TrimSpace(r.Skills),
		Motivation: strings.TrimSpace(r.Motivation),
	}
	if link := strings.TrimSpace(r.ResumeLink); link != "" {
		app.ResumeLink = &link
	}
	return app
}

// ToLegacyModel converts to the legacy career_submissions shape used by the
// /api/cooperate write path.
func (r CooperationRequest) ToLegacyModel() model.CareerSubmission {
	sub := model.CareerSubmission{
		FullName:   strings.TrimSpace(r.FullName),
		Email:      strings.TrimSpace(r.Email),
		Role:       r.Role,
		Skills:     strings.TrimSpace(r.Skills),
		Motivation: strings.TrimSpace(r.Motivation),
	}
	if link := strings.TrimSpace(r.ResumeLink); link != "" {
		sub.ResumeLink = &link
	}
	return sub
}

// EnterpriseProjectRequest is the body of POST /api/projects and of the
// legacy POST /api/submit-project.
type EnterpriseProjectRequest struct {
	CompanyName          string   `json:"companyName" binding:"required,min=2"`
	Industry             string   `json:"industry" binding:"required,min=2"`
	CompanySize          string   `json:"companySize" binding:"required,oneof=1-10 11-50 51-200 201-1000 1000+"`
	ContactPerson        string   `json:"contactPerson" binding:"required,min=2"`
	Email                string   `json:"email" binding:"required,email"`
	ProjectTitle         string   `json:"projectTitle" binding:"required,min=3"`
	ProblemDescription   string   `json:"problemDescription" binding:"required,min=40"`
	AIRequirements       []string `json:"aiRequirements" binding:"required,min=1,dive,oneof='ML' 'NLP' 'Computer Vision' 'Data Mining' 'Predictive Analytics'"`
	EstimatedTimeline    string   `json:"estimatedTimeline" binding:"required,min=1"`
	DataAvailability     string   `json:"dataAvailability" binding:"required,oneof=Yes No 'Not sure'"`
	SecurityRequirements string   `json:"securityRequirements" binding:"required,min=10"`
	BudgetRange          string   `json:"budgetRange" binding:"omitempty"`
}

// ToModel converts to the canonical enterprise_projects shape.
func (r EnterpriseProjectRequest) ToModel() model.EnterpriseProject {
	project := model.EnterpriseProject{
		CompanyName:          strings.TrimSpace(r.CompanyName),
		Industry:             strings.TrimSpace(r.Industry),
		CompanySize:          r.CompanySize,
		ContactPerson:        strings.TrimSpace(r.ContactPerson),
		Email:                strings.TrimSpace(r.Email),
		ProjectTitle:         strings.TrimSpace(r.ProjectTitle),
		ProblemDescription:   strings.TrimSpace(r.ProblemDescription),
		AIRequirements:       append([]string{}, r.AIRequirements...),
		EstimatedTimeline:    strings.TrimSpace(r.EstimatedTimeline),
		DataAvailability:     r.DataAvailability,
		SecurityRequirements: strings.TrimSpace(r.SecurityRequirements),
	}
	if budget := strings.TrimSpace(r.BudgetRange); budget != "" {
		project.BudgetRange = &budget
	}
	return project
}

// ToLegacyModel converts to the legacy project_submissions shape, encoding
// the AI requirements the way that table stores them.
func (r EnterpriseProjectRequest) ToLegacyModel() (model.ProjectSubmission, error) {
	encoded, err := model.EncodeAIRequirements(r.AIRequirements)
	if err != nil {
		return model.ProjectSubmission{}, err
	}
	sub := model.ProjectSubmission{
		CompanyName:          strings.TrimSpace(r.CompanyName),
		Industry:             strings.TrimSpace(r.Industry),
		CompanySize:          r.CompanySize,
		ContactPerson:        strings.TrimSpace(r.ContactPerson),
		Email:                strings.TrimSpace(r.Email),
		ProjectTitle:         strings.TrimSpace(r.ProjectTitle),
		ProblemDescription:   strings.TrimSpace(r.ProblemDescription),
		AIRequirements:       encoded,
		EstimatedTimeline:    strings.TrimSpace(r.EstimatedTimeline),
		DataAvailability:     r.DataAvailability,
		SecurityRequirements: strings.TrimSpace(r.SecurityRequirements),
	}
	if budget := strings.TrimSpace(r.BudgetRange); budget != "" {
		sub.BudgetRange = &budget
	}
	return sub, nil
}
