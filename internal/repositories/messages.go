package repositories

import (
	"context"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/metrics"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

type Messages struct {
	table table[entities.Message]
	now   func() time.Time
}

func NewMessagesRepository(db *gorm.DB) *Messages {
	return &Messages{
		table: table[entities.Message]{db: db, entity: "message", order: "timestamp desc, rowid desc"},
		now:   time.Now,
	}
}

// List returns messages newest first.
func (r *Messages) List(ctx context.Context) ([]entities.Message, error) {
	return r.table.list(ctx)
}

func (r *Messages) FindByID(ctx context.Context, id string) (*entities.Message, error) {
	return r.table.findByID(ctx, id)
}

// Create stamps the message with the current time and marks it unread.
func (r *Messages) Create(ctx context.Context, message entities.Message) (*entities.Message, error) {
	message.ID = uuid.NewString()
	message.Timestamp = r.now()
	message.Read = false
	if err := r.table.create(ctx, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *Messages) Update(ctx context.Context, id string, patch entities.MessagePatch) (*entities.Message, error) {
	return r.table.update(ctx, id, patch)
}

func (r *Messages) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

// MarkAsRead is a no-op for an unknown id.
func (r *Messages) MarkAsRead(ctx context.Context, id string) error {
	result := r.table.db.WithContext(ctx).Model(&entities.Message{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to mark message %s as read", id)
	}
	if result.RowsAffected > 0 {
		metrics.StoreMutationsCounter.WithLabelValues(r.table.entity, "update").Inc()
	}
	return nil
}

func (r *Messages) MarkAllAsRead(ctx context.Context) error {
	result := r.table.db.WithContext(ctx).Model(&entities.Message{}).Where("read = ?", false).Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark all messages as read")
	}
	if result.RowsAffected > 0 {
		metrics.StoreMutationsCounter.WithLabelValues(r.table.entity, "update").Add(float64(result.RowsAffected))
	}
	return nil
}

func (r *Messages) UnreadCount(ctx context.Context) (int, error) {
	var count int64
	err := r.table.db.WithContext(ctx).Model(&entities.Message{}).Where("read = ?", false).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}
	return int(count), nil
}
