package entities

import "time"

type PresentationStatus string

const (
	StatusSubmitted PresentationStatus = "submitted"
	StatusScreening PresentationStatus = "screening"
	StatusInterview PresentationStatus = "interview"
	StatusTechnical PresentationStatus = "technical"
	StatusOffer     PresentationStatus = "offer"
	StatusAccepted  PresentationStatus = "accepted"
	StatusRejected  PresentationStatus = "rejected"
)

type NextStep struct {
	Type string    `json:"type"`
	Date time.Time `json:"date"`
}

// Presentation references its candidate and job role by id only. Either may
// dangle after a delete; readers skip such records.
type Presentation struct {
	ID            string             `gorm:"primaryKey" json:"id"`
	CandidateID   string             `gorm:"index" json:"candidateId" validate:"required"`
	JobRoleID     string             `gorm:"index" json:"jobRoleId" validate:"required"`
	Status        PresentationStatus `json:"status" validate:"required"`
	SubmittedDate time.Time          `json:"submittedDate"`
	LastUpdated   time.Time          `json:"lastUpdated"`
	Notes         string             `json:"notes"`
	NextStep      *NextStep          `gorm:"serializer:json;type:text" json:"nextStep,omitempty"`
}

type PresentationPatch struct {
	CandidateID   *string             `json:"candidateId"`
	JobRoleID     *string             `json:"jobRoleId"`
	Status        *PresentationStatus `json:"status"`
	SubmittedDate *time.Time          `json:"submittedDate"`
	LastUpdated   *time.Time          `json:"lastUpdated"`
	Notes         *string             `json:"notes"`
	NextStep      *NextStep           `json:"nextStep"`
}

func (p PresentationPatch) Apply(pr *Presentation) {
	setIfPresent(&pr.CandidateID, p.CandidateID)
	setIfPresent(&pr.JobRoleID, p.JobRoleID)
	setIfPresent(&pr.Status, p.Status)
	setIfPresent(&pr.SubmittedDate, p.SubmittedDate)
	setIfPresent(&pr.LastUpdated, p.LastUpdated)
	setIfPresent(&pr.Notes, p.Notes)
	if p.NextStep != nil {
		step := *p.NextStep
		pr.NextStep = &step
	}
}
