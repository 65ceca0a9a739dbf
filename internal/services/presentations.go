package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/events"
	"github.com/maxaizer/recruit-dashboard/internal/logger"
	"github.com/maxaizer/recruit-dashboard/internal/matching"
	log "github.com/sirupsen/logrus"
)

type PresentationDetails struct {
	matching.PresentationView
	SkillMatch matching.SkillMatchResult `json:"skillMatch"`
}

type CandidateDetails struct {
	Candidate     entities.Candidate          `json:"candidate"`
	Presentations []matching.PresentationView `json:"presentations"`
}

type JobRoleDetails struct {
	JobRole       entities.JobRole            `json:"jobRole"`
	Presentations []matching.PresentationView `json:"presentations"`
	Stats         matching.JobStats           `json:"stats"`
}

type PresentationService struct {
	bus           EventBus.Bus
	candidates    candidateRepository
	jobs          jobRoleRepository
	presentations presentationRepository
}

func NewPresentationService(bus EventBus.Bus, candidates candidateRepository, jobs jobRoleRepository,
	presentations presentationRepository) *PresentationService {
	return &PresentationService{bus: bus, candidates: candidates, jobs: jobs, presentations: presentations}
}

// List returns presentations whose candidate and job role resolve, filtered
// by query and status and ordered most recently updated first.
func (s *PresentationService) List(ctx context.Context, query string,
	status entities.PresentationStatus) ([]matching.PresentationView, error) {

	snap, err := loadSnapshot(ctx, s.candidates, s.jobs, s.presentations)
	if err != nil {
		return nil, err
	}

	views := matching.JoinPresentations(snap.presentations, snap.candidates, snap.jobs)
	return matching.FilterPresentations(views, query, status), nil
}

// Details returns nil when the presentation, its candidate or its job role
// does not exist.
func (s *PresentationService) Details(ctx context.Context, id string) (*PresentationDetails, error) {
	presentation, err := s.presentations.FindByID(ctx, id)
	if err != nil || presentation == nil {
		return nil, err
	}

	candidate, err := s.candidates.FindByID(ctx, presentation.CandidateID)
	if err != nil || candidate == nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, presentation.JobRoleID)
	if err != nil || job == nil {
		return nil, err
	}

	return &PresentationDetails{
		PresentationView: matching.NewPresentationView(*presentation, *candidate, *job),
		SkillMatch:       matching.ComputeSkillMatch(candidate.Skills, job.Requirements),
	}, nil
}

func (s *PresentationService) CandidateDetails(ctx context.Context, id string) (*CandidateDetails, error) {
	snap, err := loadSnapshot(ctx, s.candidates, s.jobs, s.presentations)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil || candidate == nil {
		return nil, err
	}

	views := matching.JoinPresentations(snap.presentations, snap.candidates, snap.jobs)
	return &CandidateDetails{
		Candidate:     *candidate,
		Presentations: matching.PresentationsForCandidate(views, id),
	}, nil
}

func (s *PresentationService) JobRoleDetails(ctx context.Context, id string) (*JobRoleDetails, error) {
	snap, err := loadSnapshot(ctx, s.candidates, s.jobs, s.presentations)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil || job == nil {
		return nil, err
	}

	views := matching.JoinPresentations(snap.presentations, snap.candidates, snap.jobs)
	return &JobRoleDetails{
		JobRole:       *job,
		Presentations: matching.PresentationsForJob(views, id),
		Stats:         matching.ComputeJobStats(snap.presentations, id),
	}, nil
}

// Create does not require the referenced candidate and job role to exist.
func (s *PresentationService) Create(ctx context.Context,
	presentation entities.Presentation) (*entities.Presentation, error) {

	created, err := s.presentations.Create(ctx, presentation)
	if err != nil {
		return nil, err
	}

	event := events.PresentationCreated{
		Presentation: *created,
		Candidate:    s.findCandidate(ctx, created.CandidateID),
		JobRole:      s.findJobRole(ctx, created.JobRoleID),
	}
	s.bus.Publish(events.PresentationCreatedTopic, event)

	return created, nil
}

// Update applies the patch and publishes a status change event when the
// status differs afterwards. Unknown ids return nil without publishing.
func (s *PresentationService) Update(ctx context.Context, id string,
	patch entities.PresentationPatch) (*entities.Presentation, error) {

	before, err := s.presentations.FindByID(ctx, id)
	if err != nil || before == nil {
		return nil, err
	}

	updated, err := s.presentations.Update(ctx, id, patch)
	if err != nil || updated == nil {
		return updated, err
	}

	if before.Status != updated.Status {
		event := events.PresentationStatusChanged{
			Presentation: *updated,
			From:         before.Status,
			To:           updated.Status,
		}
		if candidate := s.findCandidate(ctx, updated.CandidateID); candidate != nil {
			event.CandidateName = candidate.Name
		}
		if job := s.findJobRole(ctx, updated.JobRoleID); job != nil {
			event.JobTitle = job.Title
		}
		s.bus.Publish(events.PresentationStatusChangedTopic, event)
	}

	return updated, nil
}


// findCandidate and findJobRole look up event context. A failed lookup is logged
// and the event goes out without it.
func (s *PresentationService) findCandidate(ctx context.Context, id string) *entities.Candidate {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load candidate %s for presentation event: %v", id, err)
		return nil
	}
	return candidate
}

func (s *PresentationService) findJobRole(ctx context.Context, id string) *entities.JobRole {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load job role %s for presentation event: %v", id, err)
		return nil
	}
	return job
}
