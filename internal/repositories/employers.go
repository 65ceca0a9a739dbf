package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"gorm.io/gorm"
)

type Employers struct {
	table table[entities.Employer]
}

func NewEmployersRepository(db *gorm.DB) *Employers {
	return &Employers{table: table[entities.Employer]{db: db, entity: "employer", order: "rowid"}}
}

func (r *Employers) List(ctx context.Context) ([]entities.Employer, error) {
	return r.table.list(ctx)
}

func (r *Employers) FindByID(ctx context.Context, id string) (*entities.Employer, error) {
	return r.table.findByID(ctx, id)
}

func (r *Employers) Create(ctx context.Context, employer entities.Employer) (*entities.Employer, error) {
	employer.ID = uuid.NewString()
	if err := r.table.create(ctx, &employer); err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *Employers) Update(ctx context.Context, id string, patch entities.EmployerPatch) (*entities.Employer, error) {
	return r.table.update(ctx, id, patch)
}

func (r *Employers) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
