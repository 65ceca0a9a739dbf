package api

import (
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	overview, err := s.dashboard.Overview(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metrics": overview.Metrics,
		"urgentCandidates": lo.Map(overview.UrgentCandidates, func(c entities.Candidate, _ int) candidateRow {
			return newCandidateRow(c)
		}),
		"recentJobs": lo.Map(overview.RecentJobs, func(j entities.JobRole, _ int) jobRow { return newJobRow(j) }),
		"activePresentations": lo.Map(overview.ActivePresentations, func(v matching.PresentationView, _ int) presentationRow {
			return newPresentationRow(v, now)
		}),
		"unreadMessages": overview.UnreadMessages,
	})
}
