package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"gorm.io/gorm"
)

// Presentations does not check that the referenced candidate and job role
// exist, and deleting either leaves their presentations in place.
type Presentations struct {
	table table[entities.Presentation]
}

func NewPresentationsRepository(db *gorm.DB) *Presentations {
	return &Presentations{table: table[entities.Presentation]{db: db, entity: "presentation", order: "rowid"}}
}

func (r *Presentations) List(ctx context.Context) ([]entities.Presentation, error) {
	return r.table.list(ctx)
}

func (r *Presentations) FindByID(ctx context.Context, id string) (*entities.Presentation, error) {
	return r.table.findByID(ctx, id)
}

func (r *Presentations) Create(ctx context.Context, presentation entities.Presentation) (*entities.Presentation, error) {
	presentation.ID = uuid.NewString()
	if err := r.table.create(ctx, &presentation); err != nil {
		return nil, err
	}
	return &presentation, nil
}

func (r *Presentations) Update(ctx context.Context, id string,
	patch entities.PresentationPatch) (*entities.Presentation, error) {
	return r.table.update(ctx, id, patch)
}

func (r *Presentations) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
