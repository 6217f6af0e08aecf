package model

import "time"

// The two tables below predate the canonical schemas. They were created by an
// earlier revision of the site that named columns in camelCase and encoded the
// AI requirements as a JSON string. Their write endpoints are still live, so
// the tables must keep migrating and project_submissions must keep feeding the
// merged admin view. See DESIGN.md for the migration-debt notes.

// ProjectSubmission is the legacy shadow of EnterpriseProject.
type ProjectSubmission struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName          string    `gorm:"column:companyName;type:text;not null" json:"companyName"`
	Industry             string    `gorm:"column:industry;type:text;not null" json:"industry"`
	CompanySize          string    `gorm:"column:companySize;type:text;not null" json:"companySize"`
	ContactPerson        string    `gorm:"column:contactPerson;type:text;not null" json:"contactPerson"`
	Email                string    `gorm:"column:email;type:text;not null" json:"email"`
	ProjectTitle         string    `gorm:"column:projectTitle;type:text;not null" json:"projectTitle"`
	ProblemDescription   string    `gorm:"column:problemDescription;type:text;not null" json:"problemDescription"`
	AIRequirements       string    `gorm:"column:aiRequirements;type:text;not null" json:"aiRequirements"`
	EstimatedTimeline    string    `gorm:"column:estimatedTimeline;type:text;not null" json:"estimatedTimeline"`
	DataAvailability     string    `gorm:"column:dataAvailability;type:text;not null" json:"dataAvailability"`
	SecurityRequirements string    `gorm:"column:securityRequirements;type:text;not null" json:"securityRequirements"`
	BudgetRange          *string   `gorm:"column:budgetRange;type:text" json:"budgetRange"`
	CreatedAt            time.Time `gorm:"column:createdAt;type:timestamptz" json:"createdAt"`
}

// TableName keeps the legacy table name instead of gorm's pluralized default.
func (ProjectSubmission) TableName() string { return "project_submissions" }

// ToEnterpriseProject maps a legacy row onto the canonical shape. The JSON
// encoded AI requirements are decoded; a row that fails to decode is reported
// as an error, never dropped.
func (p ProjectSubmission) ToEnterpriseProject() (EnterpriseProject, error) {
	reqs, err := DecodeAIRequirements(p.AIRequirements)
	if err != nil {
		return EnterpriseProject{}, err
	}
	return EnterpriseProject{
		ID:                   p.ID,
		CompanyName:          p.CompanyName,
		Industry:             p.Industry,
		CompanySize:          p.CompanySize,
		ContactPerson:        p.ContactPerson,
		Email:                p.Email,
		ProjectTitle:         p.ProjectTitle,
		ProblemDescription:   p.ProblemDescription,
		AIRequirements:       reqs,
		EstimatedTimeline:    p.EstimatedTimeline,
		DataAvailability:     p.DataAvailability,
		SecurityRequirements: p.SecurityRequirements,
		BudgetRange:          p.BudgetRange,
		CreatedAt:            p.CreatedAt,
	}, nil
}

// CareerSubmission is the legacy shadow of CooperationApplication, written by
// the /api/cooperate endpoint. No query path reads it back.
type CareerSubmission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `gorm:"column:fullName;type:text;not null" json:"fullName"`
	Email      string    `gorm:"column:email;type:text;not null" json:"email"`
	Role       string    `gorm:"column:role;type:text;not null" json:"role"`
	Skills     string    `gorm:"column:skills;type:text;not null" json:"skills"`
	Motivation string    `gorm:"column:motivation;type:text;not null" json:"motivation"`
	ResumeLink *string   `gorm:"column:resumeLink;type:text" json:"resumeLink"`
	CreatedAt  time.Time `gorm:"column:createdAt;type:timestamptz" json:"createdAt"`
}

// TableName keeps the legacy table name.
func (CareerSubmission) TableName() string { return "career_submissions" }
