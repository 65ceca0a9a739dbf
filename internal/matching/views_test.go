package matching

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	"github.com/maxaizer/recruit-dashboard/internal/repositories"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func sampleViews() []PresentationView {
	data := repositories.SampleData(fixtureNow)
	return JoinPresentations(data.Presentations, data.Candidates, data.JobRoles)
}

func Test_JoinPresentations_ShouldDropDanglingReferences(t *testing.T) {
	data := repositories.SampleData(fixtureNow)
	presentations := append(data.Presentations, entities.Presentation{ID: "7", CandidateID: "99", JobRoleID: "1"})

	views := JoinPresentations(presentations, data.Candidates, data.JobRoles)

	assert.Len(t, views, 6)
	assert.Equal(t, "Alex Johnson", views[0].Candidate.Name)
	assert.Equal(t, "Senior Frontend Developer", views[0].JobRole.Title)
	assert.Equal(t, pipeline.StateInProgress, views[0].State)
}

func Test_ActivePresentations_ShouldBeNewestFirstWithoutTerminal(t *testing.T) {
	active := ActivePresentations(sampleViews())

	ids := lo.Map(active, func(v PresentationView, _ int) string { return v.Presentation.ID })
	assert.Equal(t, []string{"5", "1", "2", "3", "4"}, ids)
}

func Test_UrgentCandidates_ShouldSortByDaysDescending(t *testing.T) {
	data := repositories.SampleData(fixtureNow)

	urgent := UrgentCandidates(data.Candidates)

	names := lo.Map(urgent, func(c entities.Candidate, _ int) string { return c.Name })
	assert.Equal(t, []string{"Alex Johnson", "David Kim", "Marcus Williams"}, names)
}

func Test_RecentJobs_ShouldLimitAndNotReorderInput(t *testing.T) {
	data := repositories.SampleData(fixtureNow)

	recent := RecentJobs(data.JobRoles, 3)

	require.Len(t, recent, 3)
	assert.Equal(t, []string{"1", "4", "2"}, lo.Map(recent, func(j entities.JobRole, _ int) string { return j.ID }))
	assert.Equal(t, "1", data.JobRoles[0].ID)
	assert.Equal(t, "2", data.JobRoles[1].ID)
}

func Test_ComputeJobStats_ForBackendEngineer(t *testing.T) {
	data := repositories.SampleData(fixtureNow)

	stats := ComputeJobStats(data.Presentations, "3")

	assert.Equal(t, JobStats{TotalCandidates: 2, InProgress: 1, Accepted: 0, Rejected: 1}, stats)
}

func Test_PresentationsForCandidate(t *testing.T) {
	views := PresentationsForCandidate(sampleViews(), "1")

	assert.Len(t, views, 2)
	assert.Len(t, PresentationsForJob(sampleViews(), "5"), 1)
}
