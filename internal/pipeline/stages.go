package pipeline

import "github.com/maxaizer/recruit-dashboard/internal/entities"

// Stages are the display labels of the hiring pipeline, in order.
var Stages = []string{"Submitted", "Screening", "Interview", "Technical", "Offer"}

const StageCount = 5

const (
	// NoProgress is the index of statuses that have left the pipeline without success.
	NoProgress = -1
	// Completed is the index of an accepted presentation, one past the last stage.
	Completed = StageCount
)

var stageIndexes = map[entities.PresentationStatus]int{
	entities.StatusSubmitted: 0,
	entities.StatusScreening: 1,
	entities.StatusInterview: 2,
	entities.StatusTechnical: 3,
	entities.StatusOffer:     4,
	entities.StatusAccepted:  Completed,
	entities.StatusRejected:  NoProgress,
}

// Statuses returns every known presentation status in pipeline order,
// followed by the two terminal ones.
func Statuses() []entities.PresentationStatus {
	return []entities.PresentationStatus{
		entities.StatusSubmitted,
		entities.StatusScreening,
		entities.StatusInterview,
		entities.StatusTechnical,
		entities.StatusOffer,
		entities.StatusAccepted,
		entities.StatusRejected,
	}
}

func IsKnown(status entities.PresentationStatus) bool {
	_, ok := stageIndexes[status]
	return ok
}

// StageIndex maps a status onto the stage sequence. Unknown statuses are
// treated like rejected ones and get NoProgress.
func StageIndex(status entities.PresentationStatus) int {
	if index, ok := stageIndexes[status]; ok {
		return index
	}
	return NoProgress
}

func IsActive(status entities.PresentationStatus) bool {
	return status != entities.StatusRejected && status != entities.StatusAccepted
}

// Label is the display name of a status: its stage label while in the
// pipeline, a capitalized name once terminal, the raw value when unknown.
func Label(status entities.PresentationStatus) string {
	switch status {
	case entities.StatusAccepted:
		return "Accepted"
	case entities.StatusRejected:
		return "Rejected"
	}
	if index, ok := stageIndexes[status]; ok {
		return Stages[index]
	}
	return string(status)
}
