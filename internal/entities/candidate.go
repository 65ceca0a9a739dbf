package entities

import "time"

type CandidateStatus string

const (
	CandidateActive CandidateStatus = "active"
	CandidatePlaced CandidateStatus = "placed"
	CandidateOnHold CandidateStatus = "on hold"
)

type SkillExperience struct {
	Name      string    `json:"name"`
	Years     int       `json:"years"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Candidate struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	Name             string            `json:"name" validate:"required"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Skills           []SkillExperience `gorm:"serializer:json;type:text" json:"skills"`
	Experience       int               `json:"experience"`
	LastEmployed     time.Time         `json:"lastEmployed"`
	DaysSinceLastJob int               `json:"daysSinceLastJob"`
	Status           CandidateStatus   `json:"status" validate:"required"`
	Notes            string            `json:"notes"`
	Avatar           *string           `json:"avatar,omitempty"`
}

type CandidatePatch struct {
	Name             *string            `json:"name"`
	Email            *string            `json:"email"`
	Phone            *string            `json:"phone"`
	Skills           *[]SkillExperience `json:"skills"`
	Experience       *int               `json:"experience"`
	LastEmployed     *time.Time         `json:"lastEmployed"`
	DaysSinceLastJob *int               `json:"daysSinceLastJob"`
	Status           *CandidateStatus   `json:"status"`
	Notes            *string            `json:"notes"`
	Avatar           *string            `json:"avatar"`
}

func (p CandidatePatch) Apply(c *Candidate) {
	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Email, p.Email)
	setIfPresent(&c.Phone, p.Phone)
	setIfPresent(&c.Skills, p.Skills)
	setIfPresent(&c.Experience, p.Experience)
	setIfPresent(&c.LastEmployed, p.LastEmployed)
	setIfPresent(&c.DaysSinceLastJob, p.DaysSinceLastJob)
	setIfPresent(&c.Status, p.Status)
	setIfPresent(&c.Notes, p.Notes)
	if p.Avatar != nil {
		avatar := *p.Avatar
		c.Avatar = &avatar
	}
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
