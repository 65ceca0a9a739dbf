package matching

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	"github.com/samber/lo"
	"slices"
)

// PresentationView is a presentation joined with the entities it references.
type PresentationView struct {
	Presentation entities.Presentation `json:"presentation"`
	Candidate    entities.Candidate    `json:"candidate"`
	JobRole      entities.JobRole      `json:"jobRole"`
	Progress     pipeline.Progress     `json:"progress"`
	State        pipeline.State        `json:"state"`
}

type JobStats struct {
	TotalCandidates int `json:"totalCandidates"`
	InProgress      int `json:"inProgress"`
	Accepted        int `json:"accepted"`
	Rejected        int `json:"rejected"`
}

// JoinPresentations resolves candidates and job roles for every presentation,
// silently dropping those with a dangling reference. Input order is kept.
func JoinPresentations(presentations []entities.Presentation, candidates []entities.Candidate,
	jobs []entities.JobRole) []PresentationView {

	candidatesByID := lo.KeyBy(candidates, func(c entities.Candidate) string { return c.ID })
	jobsByID := lo.KeyBy(jobs, func(j entities.JobRole) string { return j.ID })

	views := make([]PresentationView, 0, len(presentations))
	for _, p := range presentations {
		candidate, ok := candidatesByID[p.CandidateID]
		if !ok {
			continue
		}
		job, ok := jobsByID[p.JobRoleID]
		if !ok {
			continue
		}
		views = append(views, NewPresentationView(p, candidate, job))
	}
	return views
}

func NewPresentationView(p entities.Presentation, candidate entities.Candidate, job entities.JobRole) PresentationView {
	return PresentationView{
		Presentation: p,
		Candidate:    candidate,
		JobRole:      job,
		Progress:     pipeline.ProgressOf(p.Status),
		State:        pipeline.StateOf(p.Status),
	}
}

// ActivePresentations keeps presentations still in the pipeline, most
// recently updated first.
func ActivePresentations(views []PresentationView) []PresentationView {
	active := lo.Filter(views, func(v PresentationView, _ int) bool {
		return pipeline.IsActive(v.Presentation.Status)
	})
	sortByLastUpdatedDesc(active)
	return active
}

// UrgentCandidates lists active candidates out of work for longer than the
// urgency threshold, longest first.
func UrgentCandidates(candidates []entities.Candidate) []entities.Candidate {
	urgent := lo.Filter(candidates, func(c entities.Candidate, _ int) bool { return IsUrgent(c) })
	slices.SortStableFunc(urgent, func(a, b entities.Candidate) int {
		return b.DaysSinceLastJob - a.DaysSinceLastJob
	})
	return urgent
}

func RecentJobs(jobs []entities.JobRole, limit int) []entities.JobRole {
	recent := slices.Clone(jobs)
	slices.SortStableFunc(recent, func(a, b entities.JobRole) int {
		return b.PostedDate.Compare(a.PostedDate)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func PresentationsForCandidate(views []PresentationView, candidateID string) []PresentationView {
	return lo.Filter(views, func(v PresentationView, _ int) bool {
		return v.Presentation.CandidateID == candidateID
	})
}

func PresentationsForJob(views []PresentationView, jobID string) []PresentationView {
	return lo.Filter(views, func(v PresentationView, _ int) bool {
		return v.Presentation.JobRoleID == jobID
	})
}

// ComputeJobStats counts every presentation for the job, including those
// whose candidate no longer exists.
func ComputeJobStats(presentations []entities.Presentation, jobID string) JobStats {
	forJob := lo.Filter(presentations, func(p entities.Presentation, _ int) bool { return p.JobRoleID == jobID })

	return JobStats{
		TotalCandidates: len(forJob),
		InProgress: lo.CountBy(forJob, func(p entities.Presentation) bool {
			return pipeline.IsActive(p.Status)
		}),
		Accepted: lo.CountBy(forJob, func(p entities.Presentation) bool {
			return p.Status == entities.StatusAccepted
		}),
		Rejected: lo.CountBy(forJob, func(p entities.Presentation) bool {
			return p.Status == entities.StatusRejected
		}),
	}
}

func sortByLastUpdatedDesc(views []PresentationView) {
	slices.SortStableFunc(views, func(a, b PresentationView) int {
		return b.Presentation.LastUpdated.Compare(a.Presentation.LastUpdated)
	})
}
