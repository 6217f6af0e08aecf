package model

import "time"

// CooperationRoles is the closed set of roles for the cooperation form.
// Same list as RolesOfInterest plus a free "Other" bucket.
var CooperationRoles = append(append([]string{}, RolesOfInterest...), "Other")

// CooperationApplication represents a single submission of the cooperation form.
type CooperationApplication struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `gorm:"type:text;not null" json:"full_name"`
	Email      string    `gorm:"type:text;not null" json:"email"`
	Role       string    `gorm:"type:text;not null" json:"role"`
	Skills     string    `gorm:"type:text;not null" json:"skills"`
	Motivation string    `gorm:"type:text;not null" json:"motivation"`
	ResumeLink *string   `gorm:"type:text" json:"resume_link"`
	CreatedAt  time.Time `gorm:"type:timestamptz" json:"created_at"`
}
