package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/events"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.JobRoles.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	sortBy := query.Get("sort")
	if sortBy == "" {
		sortBy = matching.SortByPostedDate
	}
	found := matching.SearchJobs(jobs, query.Get("q"), sortBy, matching.ParseSortDirection(query.Get("dir")))

	writeJSON(w, http.StatusOK, lo.Map(found, func(j entities.JobRole, _ int) jobRow { return newJobRow(j) }))
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	details, err := s.presentations.JobRoleDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if details == nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"jobRole": newJobRow(details.JobRole),
		"presentations": lo.Map(details.Presentations, func(v matching.PresentationView, _ int) presentationRow {
			return newPresentationRow(v, s.now())
		}),
		"stats": details.Stats,
	})
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var job entities.JobRole
	if !decodeJSON(w, r, &job) {
		return
	}
	if err := s.validate.Struct(job); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.JobRoles.Create(r.Context(), job)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.bus.Publish(events.JobRoleCreatedTopic, events.JobRoleCreated{JobRole: *created})

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	var patch entities.JobRolePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := s.store.JobRoles.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFound(w, updated)
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	if err := s.store.JobRoles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
