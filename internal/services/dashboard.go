package services

import (
	"context"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	"github.com/maxaizer/recruit-dashboard/internal/metrics"
	"time"
)

const (
	overviewRecentJobs          = 3
	overviewActivePresentations = 3
)

type Overview struct {
	Metrics             matching.DashboardMetrics   `json:"metrics"`
	UrgentCandidates    []entities.Candidate        `json:"urgentCandidates"`
	RecentJobs          []entities.JobRole          `json:"recentJobs"`
	ActivePresentations []matching.PresentationView `json:"activePresentations"`
	UnreadMessages      int                         `json:"unreadMessages"`
}

type DashboardService struct {
	candidates    candidateRepository
	jobs          jobRoleRepository
	presentations presentationRepository
	messages      messageRepository
}

func NewDashboardService(candidates candidateRepository, jobs jobRoleRepository,
	presentations presentationRepository, messages messageRepository) *DashboardService {
	return &DashboardService{candidates: candidates, jobs: jobs, presentations: presentations, messages: messages}
}

// Metrics recomputes the dashboard figures from the current collections.
func (s *DashboardService) Metrics(ctx context.Context, now time.Time) (*matching.DashboardMetrics, error) {
	snap, err := loadSnapshot(ctx, s.candidates, s.jobs, s.presentations)
	if err != nil {
		return nil, err
	}

	result := matching.ComputeDashboardMetrics(snap.candidates, snap.jobs, snap.presentations, now)
	return &result, nil
}

func (s *DashboardService) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	start := time.Now()
	defer func() {
		metrics.MetricsComputeDuration.Observe(time.Since(start).Seconds())
	}()

	snap, err := loadSnapshot(ctx, s.candidates, s.jobs, s.presentations)
	if err != nil {
		return nil, err
	}

	unread, err := s.messages.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}

	views := matching.JoinPresentations(snap.presentations, snap.candidates, snap.jobs)
	active := matching.ActivePresentations(views)
	if len(active) > overviewActivePresentations {
		active = active[:overviewActivePresentations]
	}

	return &Overview{
		Metrics:             matching.ComputeDashboardMetrics(snap.candidates, snap.jobs, snap.presentations, now),
		UrgentCandidates:    matching.UrgentCandidates(snap.candidates),
		RecentJobs:          matching.RecentJobs(snap.jobs, overviewRecentJobs),
		ActivePresentations: active,
		UnreadMessages:      unread,
	}, nil
}
