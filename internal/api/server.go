package api

import (
	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/recruit-dashboard/internal/config"
	"github.com/maxaizer/recruit-dashboard/internal/repositories"
	"github.com/maxaizer/recruit-dashboard/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

type Server struct {
	store         *repositories.Store
	bus           EventBus.Bus
	dashboard     *services.DashboardService
	presentations *services.PresentationService
	validate      *validator.Validate
	limiter       *rate.Limiter
	now           func() time.Time
}

func NewServer(cfg config.ServerConfig, store *repositories.Store, bus EventBus.Bus,
	dashboard *services.DashboardService, presentations *services.PresentationService) *Server {
	return &Server{
		store:         store,
		bus:           bus,
		dashboard:     dashboard,
		presentations: presentations,
		validate:      validator.New(),
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		now:           time.Now,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(requestCounter)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))

		r.Get("/dashboard", s.getDashboard)

		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", s.listCandidates)
			r.Post("/", s.createCandidate)
			r.Get("/{id}", s.getCandidate)
			r.Patch("/{id}", s.updateCandidate)
			r.Delete("/{id}", s.deleteCandidate)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", s.listJobs)
			r.Post("/", s.createJob)
			r.Get("/{id}", s.getJob)
			r.Patch("/{id}", s.updateJob)
			r.Delete("/{id}", s.deleteJob)
		})

		r.Route("/presentations", func(r chi.Router) {
			r.Get("/", s.listPresentations)
			r.Post("/", s.createPresentation)
			r.Get("/{id}", s.getPresentation)
			r.Patch("/{id}", s.updatePresentation)
			r.Delete("/{id}", s.deletePresentation)
		})

		r.Route("/employers", func(r chi.Router) {
			r.Get("/", s.listEmployers)
			r.Post("/", s.createEmployer)
			r.Get("/{id}", s.getEmployer)
			r.Patch("/{id}", s.updateEmployer)
			r.Delete("/{id}", s.deleteEmployer)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", s.listMessages)
			r.Post("/", s.createMessage)
			r.Get("/unread", s.unreadMessages)
			r.Post("/read", s.markAllMessagesAsRead)
			r.Post("/{id}/read", s.markMessageAsRead)
			r.Delete("/{id}", s.deleteMessage)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return r
}
