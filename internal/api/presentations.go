package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) listPresentations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	status := entities.PresentationStatus(query.Get("status"))
	if status != "" && !pipeline.IsKnown(status) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown status: " + string(status)})
		return
	}

	views, err := s.presentations.List(r.Context(), query.Get("q"), status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	now := s.now()
	writeJSON(w, http.StatusOK, lo.Map(views, func(v matching.PresentationView, _ int) presentationRow {
		return newPresentationRow(v, now)
	}))
}

func (s *Server) getPresentation(w http.ResponseWriter, r *http.Request) {
	details, err := s.presentations.Details(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if details == nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"presentation": newPresentationRow(details.PresentationView, s.now()),
		"skillMatch":   details.SkillMatch,
	})
}

func (s *Server) createPresentation(w http.ResponseWriter, r *http.Request) {
	var presentation entities.Presentation
	if !decodeJSON(w, r, &presentation) {
		return
	}
	if err := s.validate.Struct(presentation); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.presentations.Create(r.Context(), presentation)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updatePresentation(w http.ResponseWriter, r *http.Request) {
	var patch entities.PresentationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := s.presentations.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeFound(w, updated)
}

func (s *Server) deletePresentation(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Presentations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
