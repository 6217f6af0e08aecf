// Package model contain gorm model for recording form submissions to database
package model

import "time"

// RolesOfInterest is the closed set of roles a career applicant can apply for.
var RolesOfInterest = []string{
	"AI Engineer",
	"Data Scientist",
	"ML Engineer",
	"Python Programmer",
	"Backend Engineer",
	"MLOps Engineer",
	"Data Engineer",
	"Software Engineer",
	"Full Stack Engineer",
	"DevOps Engineer",
	"Frontend Engineer",
	"AI Research Scientist",
}

// Availabilities is the closed set of work availability options.
var Availabilities = []string{"Full-time", "Contract", "Remote"}

// CareerApplication represents a single submission of the careers form.
// Rows are append-only: no update or delete path exists.
type CareerApplication struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName          string    `gorm:"type:text;not null" json:"full_name"`
	Email             string    `gorm:"type:text;not null" json:"email"`
	Phone             string    `gorm:"type:text;not null" json:"phone"`
	Location          string    `gorm:"type:text;not null" json:"location"`
	ProfileURL        *string   `gorm:"column:profile_url;type:text" json:"profile_url"`
	RoleOfInterest    string    `gorm:"type:text;not null" json:"role_of_interest"`
	YearsOfExperience int       `gorm:"not null" json:"years_of_experience"`
	KeySkills         string    `gorm:"type:text;not null" json:"key_skills"`
	Motivation        string    `gorm:"type:text;not null" json:"motivation"`
	Availability      string    `gorm:"type:text;not null" json:"availability"`
	CreatedAt         time.Time `gorm:"type:timestamptz" json:"created_at"`
}
