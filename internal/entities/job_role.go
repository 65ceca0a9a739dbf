package entities

import "time"

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobFilled JobStatus = "filled"
	JobClosed JobStatus = "closed"
)

type SkillRequirement struct {
	Name          string `json:"name"`
	YearsRequired int    `json:"yearsRequired"`
	IsRequired    bool   `json:"isRequired"`
}

// Salary bounds are expected to satisfy Min <= Max but nothing enforces it.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type JobRole struct {
	ID           string             `gorm:"primaryKey" json:"id"`
	Title        string             `json:"title" validate:"required"`
	Company      string             `json:"company" validate:"required"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	Requirements []SkillRequirement `gorm:"serializer:json;type:text" json:"requirements"`
	Salary       Salary             `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	PostedDate   time.Time          `json:"postedDate"`
	DeadlineDate time.Time          `json:"deadlineDate"`
	Status       JobStatus          `json:"status" validate:"required"`
	IsNew        bool               `json:"isNew"`
}

type JobRolePatch struct {
	Title        *string             `json:"title"`
	Company      *string             `json:"company"`
	Location     *string             `json:"location"`
	Description  *string             `json:"description"`
	Requirements *[]SkillRequirement `json:"requirements"`
	Salary       *Salary             `json:"salary"`
	PostedDate   *time.Time          `json:"postedDate"`
	DeadlineDate *time.Time          `json:"deadlineDate"`
	Status       *JobStatus          `json:"status"`
	IsNew        *bool               `json:"isNew"`
}

func (p JobRolePatch) Apply(j *JobRole) {
	setIfPresent(&j.Title, p.Title)
	setIfPresent(&j.Company, p.Company)
	setIfPresent(&j.Location, p.Location)
	setIfPresent(&j.Description, p.Description)
	setIfPresent(&j.Requirements, p.Requirements)
	setIfPresent(&j.Salary, p.Salary)
	setIfPresent(&j.PostedDate, p.PostedDate)
	setIfPresent(&j.DeadlineDate, p.DeadlineDate)
	setIfPresent(&j.Status, p.Status)
	setIfPresent(&j.IsNew, p.IsNew)
}
