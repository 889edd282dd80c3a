package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/internal/store/postgres/model"
	"github.com/goto/remark/pkg/clock"
	"github.com/goto/remark/pkg/id"
)

type CommentRepository struct {
	db    *gorm.DB
	ids   *id.Generator
	clock *clock.Monotonic
}

func NewCommentRepository(db *gorm.DB, ids *id.Generator) *CommentRepository {
	return &CommentRepository{
		db:    db,
		ids:   ids,
		clock: clock.NewMonotonic(nil),
	}
}

// Append inserts c inside a transaction holding the thread's advisory lock,
// so appends to one thread commit in order while other threads proceed.
func (r *CommentRepository) Append(ctx context.Context, c *domain.Comment) error {
	m := &model.Comment{}
	if err := m.FromDomain(c); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", c.Parent().Key()).Error; err != nil {
			return err
		}

		if m.ID == 0 {
			m.ID = r.ids.NextInt64()
		}
		if m.CreatedAt.IsZero() {
			var last []*model.Comment
			if err := tx.
				Where("parent_type = ? AND parent_id = ?", m.ParentType, m.ParentID).
				Order("created_at DESC, id DESC").
				Limit(1).
				Find(&last).Error; err != nil {
				return err
			}

			m.CreatedAt = r.clock.Now()
			if len(last) > 0 {
				prev := last[0].ToDomain()
				if !domain.CommentLess(prev, m.ToDomain()) {
					m.CreatedAt = prev.CreatedAt.Add(time.Microsecond)
				}
			}
		}

		return tx.Create(m).Error
	})
	if err != nil {
		return wrapError(err)
	}

	*c = *m.ToDomain()
	return nil
}

func (r *CommentRepository) QueryByParent(ctx context.Context, parent domain.ParentReference) ([]*domain.Comment, error) {
	var models []*model.Comment
	if err := r.db.WithContext(ctx).
		Where("parent_type = ? AND parent_id = ?", parent.Type, parent.ID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, wrapError(err)
	}

	comments := []*domain.Comment{}
	for _, m := range models {
		comments = append(comments, m.ToDomain())
	}
	return comments, nil
}

func (r *CommentRepository) DeleteAllForParent(ctx context.Context, parent domain.ParentReference) error {
	if err := r.db.WithContext(ctx).
		Where("parent_type = ? AND parent_id = ?", parent.Type, parent.ID).
		Delete(&model.Comment{}).Error; err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError marks driver-level timeouts with context.DeadlineExceeded.
func wrapError(err error) error {
	if pgconn.Timeout(err) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}
