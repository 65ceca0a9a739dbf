package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"gorm.io/gorm"
)

type JobRoles struct {
	table table[entities.JobRole]
}

func NewJobRolesRepository(db *gorm.DB) *JobRoles {
	return &JobRoles{table: table[entities.JobRole]{db: db, entity: "job_role", order: "rowid"}}
}

func (r *JobRoles) List(ctx context.Context) ([]entities.JobRole, error) {
	return r.table.list(ctx)
}

func (r *JobRoles) FindByID(ctx context.Context, id string) (*entities.JobRole, error) {
	return r.table.findByID(ctx, id)
}

func (r *JobRoles) Create(ctx context.Context, job entities.JobRole) (*entities.JobRole, error) {
	job.ID = uuid.NewString()
	if err := r.table.create(ctx, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRoles) Update(ctx context.Context, id string, patch entities.JobRolePatch) (*entities.JobRole, error) {
	return r.table.update(ctx, id, patch)
}

func (r *JobRoles) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
