package events

import "github.com/maxaizer/recruit-dashboard/internal/entities"

const (
	PresentationCreatedTopic       = "presentation:created"
	PresentationStatusChangedTopic = "presentation:status_changed"
	CandidateCreatedTopic          = "candidate:created"
	JobRoleCreatedTopic            = "job_role:created"
)

type PresentationCreated struct {
	Presentation entities.Presentation
	Candidate    *entities.Candidate
	JobRole      *entities.JobRole
}

// PresentationStatusChanged carries the names of the referenced entities when
// they resolve, empty strings otherwise.
type PresentationStatusChanged struct {
	Presentation  entities.Presentation
	From          entities.PresentationStatus
	To            entities.PresentationStatus
	CandidateName string
	JobTitle      string
}

type CandidateCreated struct {
	Candidate entities.Candidate
}

type JobRoleCreated struct {
	JobRole entities.JobRole
}
