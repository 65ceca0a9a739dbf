package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"gorm.io/gorm"
)

type Candidates struct {
	table table[entities.Candidate]
}

func NewCandidatesRepository(db *gorm.DB) *Candidates {
	return &Candidates{table: table[entities.Candidate]{db: db, entity: "candidate", order: "rowid"}}
}

func (r *Candidates) List(ctx context.Context) ([]entities.Candidate, error) {
	return r.table.list(ctx)
}

// FindByID returns nil without an error when no candidate has the id.
func (r *Candidates) FindByID(ctx context.Context, id string) (*entities.Candidate, error) {
	return r.table.findByID(ctx, id)
}

// Create stores the candidate under a fresh id, ignoring any id it carries.
func (r *Candidates) Create(ctx context.Context, candidate entities.Candidate) (*entities.Candidate, error) {
	candidate.ID = uuid.NewString()
	if err := r.table.create(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *Candidates) Update(ctx context.Context, id string, patch entities.CandidatePatch) (*entities.Candidate, error) {
	return r.table.update(ctx, id, patch)
}

func (r *Candidates) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
