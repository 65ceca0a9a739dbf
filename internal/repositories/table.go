package repositories

import (
	"context"
	"github.com/maxaizer/recruit-dashboard/internal/metrics"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type patch[T any] interface {
	Apply(*T)
}

// table holds the CRUD operations shared by every entity repository.
type table[T any] struct {
	db     *gorm.DB
	entity string
	order  string
}

func (t table[T]) list(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := t.db.WithContext(ctx).Order(t.order).Find(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", t.entity)
	}
	return items, nil
}

func (t table[T]) findByID(ctx context.Context, id string) (*T, error) {
	var item T
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s %s", t.entity, id)
	}
	return &item, nil
}

func (t table[T]) create(ctx context.Context, item *T) error {
	if err := t.db.WithContext(ctx).Create(item).Error; err != nil {
		return errors.Wrapf(err, "failed to create %s", t.entity)
	}
	metrics.StoreMutationsCounter.WithLabelValues(t.entity, "create").Inc()
	return nil
}

func (t table[T]) update(ctx context.Context, id string, p patch[T]) (*T, error) {
	var updated *T

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item T
		err := tx.Where("id = ?", id).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		p.Apply(&item)
		if err = tx.Save(&item).Error; err != nil {
			return err
		}
		updated = &item
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s %s", t.entity, id)
	}

	if updated != nil {
		metrics.StoreMutationsCounter.WithLabelValues(t.entity, "update").Inc()
	}
	return updated, nil
}

func (t table[T]) delete(ctx context.Context, id string) error {
	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s %s", t.entity, id)
	}
	if result.RowsAffected > 0 {
		metrics.StoreMutationsCounter.WithLabelValues(t.entity, "delete").Inc()
	}
	return nil
}
