package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"net/http"
)

func (s *Server) listEmployers(w http.ResponseWriter, r *http.Request) {
	employers, err := s.store.Employers.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matching.SearchEmployers(employers, r.URL.Query().Get("q")))
}

func (s *Server) getEmployer(w http.ResponseWriter, r *http.Request) {
	employer, err := s.store.Employers.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFound(w, employer)
}

func (s *Server) createEmployer(w http.ResponseWriter, r *http.Request) {
	var employer entities.Employer
	if !decodeJSON(w, r, &employer) {
		return
	}
	if err := s.validate.Struct(employer); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.Employers.Create(r.Context(), employer)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateEmployer(w http.ResponseWriter, r *http.Request) {
	var patch entities.EmployerPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := s.store.Employers.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFound(w, updated)
}

func (s *Server) deleteEmployer(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Employers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
