package services

import (
	"context"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
)

type candidateRepository interface {
	List(ctx context.Context) ([]entities.Candidate, error)
	FindByID(ctx context.Context, id string) (*entities.Candidate, error)
}

type jobRoleRepository interface {
	List(ctx context.Context) ([]entities.JobRole, error)
	FindByID(ctx context.Context, id string) (*entities.JobRole, error)
}

type presentationRepository interface {
	List(ctx context.Context) ([]entities.Presentation, error)
	FindByID(ctx context.Context, id string) (*entities.Presentation, error)
	Create(ctx context.Context, presentation entities.Presentation) (*entities.Presentation, error)
	Update(ctx context.Context, id string, patch entities.PresentationPatch) (*entities.Presentation, error)
}

type messageRepository interface {
	Create(ctx context.Context, message entities.Message) (*entities.Message, error)
	UnreadCount(ctx context.Context) (int, error)
}

type snapshot struct {
	candidates    []entities.Candidate
	jobs          []entities.JobRole
	presentations []entities.Presentation
}

func loadSnapshot(ctx context.Context, candidates candidateRepository, jobs jobRoleRepository,
	presentations presentationRepository) (*snapshot, error) {

	var s snapshot
	var err error

	if s.candidates, err = candidates.List(ctx); err != nil {
		return nil, err
	}
	if s.jobs, err = jobs.List(ctx); err != nil {
		return nil, err
	}
	if s.presentations, err = presentations.List(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}
