package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/events"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) listCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.Candidates.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	sortBy := query.Get("sort")
	if sortBy == "" {
		sortBy = matching.SortByDaysSinceLastJob
	}
	found := matching.SearchCandidates(candidates, query.Get("q"), sortBy, matching.ParseSortDirection(query.Get("dir")))

	writeJSON(w, http.StatusOK, lo.Map(found, func(c entities.Candidate, _ int) candidateRow {
		return newCandidateRow(c)
	}))
}

func (s *Server) getCandidate(w http.ResponseWriter, r *http.Request) {
	details, err := s.presentations.CandidateDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if details == nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"candidate": newCandidateRow(details.Candidate),
		"presentations": lo.Map(details.Presentations, func(v matching.PresentationView, _ int) presentationRow {
			return newPresentationRow(v, s.now())
		}),
	})
}

func (s *Server) createCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate entities.Candidate
	if !decodeJSON(w, r, &candidate) {
		return
	}
	if err := s.validate.Struct(candidate); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.Candidates.Create(r.Context(), candidate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.bus.Publish(events.CandidateCreatedTopic, events.CandidateCreated{Candidate: *created})

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCandidate(w http.ResponseWriter, r *http.Request) {
	var patch entities.CandidatePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := s.store.Candidates.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFound(w, updated)
}

func (s *Server) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Candidates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
