package model

import (
	"time"

	"github.com/lib/pq"
)

// CompanySizes is the closed set of company size buckets.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-1000", "1000+"}

// AIRequirementOptions is the closed set of selectable AI requirements.
// A submission must carry at least one of them.
var AIRequirementOptions = []string{
	"ML",
	"NLP",
	"Computer Vision",
	"Data Mining",
	"Predictive Analytics",
}

// DataAvailabilities is the closed set of answers to the data availability question.
var DataAvailabilities = []string{"Yes", "No", "Not sure"}

// EnterpriseProject represents a single submission of the enterprise project form.
type EnterpriseProject struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName          string         `gorm:"type:text;not null" json:"company_name"`
	Industry             string         `gorm:"type:text;not null" json:"industry"`
	CompanySize          string         `gorm:"type:text;not null" json:"company_size"`
	ContactPerson        string         `gorm:"type:text;not null" json:"contact_person"`
	Email                string         `gorm:"type:text;not null" json:"email"`
	ProjectTitle         string         `gorm:"type:text;not null" json:"project_title"`
	ProblemDescription   string         `gorm:"type:text;not null" json:"problem_description"`
	AIRequirements       pq.StringArray `gorm:"column:ai_requirements;type:text[];not null" json:"ai_requirements"`
	EstimatedTimeline    string         `gorm:"type:text;not null" json:"estimated_timeline"`
	DataAvailability     string         `gorm:"type:text;not null" json:"data_availability"`
	SecurityRequirements string         `gorm:"type:text;not null" json:"security_requirements"`
	BudgetRange          *string        `gorm:"type:text" json:"budget_range"`
	CreatedAt            time.Time      `gorm:"type:timestamptz" json:"created_at"`
}
