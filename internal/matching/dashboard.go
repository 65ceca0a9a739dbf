package matching

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	"github.com/samber/lo"
	"time"
)

const (
	UrgentThresholdDays = 180
	UpcomingWindow      = 7 * 24 * time.Hour
)

type DashboardMetrics struct {
	ActiveCandidates     int `json:"activeCandidates"`
	OpenRoles            int `json:"openRoles"`
	PendingPresentations int `json:"pendingPresentations"`
	RecentPlacements     int `json:"recentPlacements"`
	UrgentCandidates     int `json:"urgentCandidates"`
	UpcomingInterviews   int `json:"upcomingInterviews"`
}

// ComputeDashboardMetrics recomputes every figure from the given collections.
// Presentation-based figures only count presentations whose candidate and job
// role both resolve.
func ComputeDashboardMetrics(candidates []entities.Candidate, jobs []entities.JobRole,
	presentations []entities.Presentation, now time.Time) DashboardMetrics {

	resolvable := resolvablePresentations(candidates, jobs, presentations)

	return DashboardMetrics{
		ActiveCandidates: lo.CountBy(candidates, func(c entities.Candidate) bool {
			return c.Status == entities.CandidateActive
		}),
		OpenRoles: lo.CountBy(jobs, func(j entities.JobRole) bool {
			return j.Status == entities.JobOpen
		}),
		PendingPresentations: lo.CountBy(resolvable, func(p entities.Presentation) bool {
			return pipeline.IsActive(p.Status)
		}),
		RecentPlacements: lo.CountBy(resolvable, func(p entities.Presentation) bool {
			return p.Status == entities.StatusAccepted
		}),
		UrgentCandidates: lo.CountBy(candidates, IsUrgent),
		UpcomingInterviews: lo.CountBy(resolvable, func(p entities.Presentation) bool {
			return IsUpcoming(p, now)
		}),
	}
}

func IsUrgent(c entities.Candidate) bool {
	return c.Status == entities.CandidateActive && c.DaysSinceLastJob > UrgentThresholdDays
}

// IsUpcoming reports whether the next step falls strictly inside
// (now, now+UpcomingWindow). Both bounds are excluded.
func IsUpcoming(p entities.Presentation, now time.Time) bool {
	if p.NextStep == nil {
		return false
	}
	date := p.NextStep.Date
	return date.After(now) && date.Before(now.Add(UpcomingWindow))
}

func resolvablePresentations(candidates []entities.Candidate, jobs []entities.JobRole,
	presentations []entities.Presentation) []entities.Presentation {

	candidateIDs := lo.Associate(candidates, func(c entities.Candidate) (string, struct{}) { return c.ID, struct{}{} })
	jobIDs := lo.Associate(jobs, func(j entities.JobRole) (string, struct{}) { return j.ID, struct{}{} })

	return lo.Filter(presentations, func(p entities.Presentation, _ int) bool {
		_, hasCandidate := candidateIDs[p.CandidateID]
		_, hasJob := jobIDs[p.JobRoleID]
		return hasCandidate && hasJob
	})
}
