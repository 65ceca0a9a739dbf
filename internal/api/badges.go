package api

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/format"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	"time"
)

type BadgeVariant string

const (
	BadgePrimary   BadgeVariant = "primary"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeSuccess   BadgeVariant = "success"
	BadgeDanger    BadgeVariant = "danger"
	BadgeNew       BadgeVariant = "new"
)

type Badge struct {
	Label   string       `json:"label"`
	Variant BadgeVariant `json:"variant"`
}

var stateVariants = map[pipeline.State]BadgeVariant{
	pipeline.StateInProgress: BadgePrimary,
	pipeline.StateOffer:      BadgeSuccess,
	pipeline.StateAccepted:   BadgeSuccess,
	pipeline.StateRejected:   BadgeDanger,
}

func presentationBadge(status entities.PresentationStatus) Badge {
	variant, ok := stateVariants[pipeline.StateOf(status)]
	if !ok {
		variant = BadgeSecondary
	}
	return Badge{Label: pipeline.Label(status), Variant: variant}
}

func candidateBadge(status entities.CandidateStatus) Badge {
	switch status {
	case entities.CandidateActive:
		return Badge{Label: "Active", Variant: BadgePrimary}
	case entities.CandidatePlaced:
		return Badge{Label: "Placed", Variant: BadgeSuccess}
	case entities.CandidateOnHold:
		return Badge{Label: "On Hold", Variant: BadgeSecondary}
	default:
		return Badge{Label: string(status), Variant: BadgeSecondary}
	}
}

func jobBadge(status entities.JobStatus) Badge {
	switch status {
	case entities.JobOpen:
		return Badge{Label: "Open", Variant: BadgeSuccess}
	case entities.JobFilled:
		return Badge{Label: "Filled", Variant: BadgeSecondary}
	case entities.JobClosed:
		return Badge{Label: "Closed", Variant: BadgeSecondary}
	default:
		return Badge{Label: string(status), Variant: BadgeSecondary}
	}
}

type candidateRow struct {
	entities.Candidate
	Badge             Badge  `json:"badge"`
	LastEmployedLabel string `json:"lastEmployedLabel"`
	Urgent            bool   `json:"urgent"`
}

func newCandidateRow(c entities.Candidate) candidateRow {
	return candidateRow{
		Candidate:         c,
		Badge:             candidateBadge(c.Status),
		LastEmployedLabel: format.FormatDate(c.LastEmployed),
		Urgent:            matching.IsUrgent(c),
	}
}

type jobRow struct {
	entities.JobRole
	Badge       Badge  `json:"badge"`
	NewBadge    *Badge `json:"newBadge,omitempty"`
	SalaryLabel string `json:"salaryLabel"`
	PostedLabel string `json:"postedLabel"`
}

func newJobRow(j entities.JobRole) jobRow {
	row := jobRow{
		JobRole:     j,
		Badge:       jobBadge(j.Status),
		SalaryLabel: format.FormatSalary(j.Salary.Min, j.Salary.Max, j.Salary.Currency),
		PostedLabel: format.FormatDate(j.PostedDate),
	}
	if j.IsNew {
		row.NewBadge = &Badge{Label: "New", Variant: BadgeNew}
	}
	return row
}

type presentationRow struct {
	matching.PresentationView
	Badge        Badge  `json:"badge"`
	UpdatedLabel string `json:"updatedLabel"`
}

func newPresentationRow(v matching.PresentationView, now time.Time) presentationRow {
	return presentationRow{
		PresentationView: v,
		Badge:            presentationBadge(v.Presentation.Status),
		UpdatedLabel:     format.TimeAgo(v.Presentation.LastUpdated, now),
	}
}

type messageRow struct {
	entities.Message
	TimeAgo string `json:"timeAgo"`
}

func newMessageRow(m entities.Message, now time.Time) messageRow {
	return messageRow{Message: m, TimeAgo: format.TimeAgo(m.Timestamp, now)}
}
