package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.Messages.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	now := s.now()
	found := matching.SearchMessages(messages, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, lo.Map(found, func(m entities.Message, _ int) messageRow {
		return newMessageRow(m, now)
	}))
}

func (s *Server) unreadMessages(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Messages.UnreadCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) createMessage(w http.ResponseWriter, r *http.Request) {
	var message entities.Message
	if !decodeJSON(w, r, &message) {
		return
	}
	if err := s.validate.Struct(message); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.store.Messages.Create(r.Context(), message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) markMessageAsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Messages.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markAllMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Messages.MarkAllAsRead(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
