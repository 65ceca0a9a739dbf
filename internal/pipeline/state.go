package pipeline

import "github.com/maxaizer/recruit-dashboard/internal/entities"

type State int

const (
	StateUnknown State = iota
	StateInProgress
	StateOffer
	StateAccepted
	StateRejected
)

var stateNames = map[State]string{
	StateUnknown:    "unknown",
	StateInProgress: "in_progress",
	StateOffer:      "offer",
	StateAccepted:   "accepted",
	StateRejected:   "rejected",
}

func (s State) String() string {
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func StateOf(status entities.PresentationStatus) State {
	switch status {
	case entities.StatusSubmitted, entities.StatusScreening, entities.StatusInterview, entities.StatusTechnical:
		return StateInProgress
	case entities.StatusOffer:
		return StateOffer
	case entities.StatusAccepted:
		return StateAccepted
	case entities.StatusRejected:
		return StateRejected
	default:
		return StateUnknown
	}
}

// Progress describes how a presentation is drawn against Stages.
type Progress struct {
	Current  int  `json:"current"`
	Visible  bool `json:"visible"`
	Complete bool `json:"complete"`
}

func ProgressOf(status entities.PresentationStatus) Progress {
	index := StageIndex(status)
	if index < 0 {
		return Progress{Current: NoProgress}
	}
	return Progress{Current: index, Visible: true, Complete: index >= StageCount}
}
