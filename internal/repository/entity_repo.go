package repository

import (
	"context"

	"gorm.io/gorm"
)

// Conflicter reports whether an entity collides with another row on any of its
// uniqueness fields. Each catalog entity decides its own fields, so the
// duplicate check is compile-time checked instead of looked up by name at
// runtime.
type Conflicter[T any] interface {
	ConflictsWith(other T) bool
}

// EntityRepository provides get-by-id, get-all and duplicate-checked insert
// for any catalog entity. The duplicate check is a linear scan over all rows
// of the entity, so it is only as strong as the single request executing it;
// two concurrent inserts of the same value can both pass.
type EntityRepository[T Conflicter[T]] struct {
	db *gorm.DB
}

func NewEntityRepository[T Conflicter[T]](db *gorm.DB) *EntityRepository[T] {
	return &EntityRepository[T]{db: db}
}

func (r *EntityRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var e T
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

// GetAll returns every row. No rows is an empty slice, not an error.
func (r *EntityRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	tx := r.db.WithContext(ctx).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// Conflicts scans all rows and reports whether e collides with any of them.
func (r *EntityRepository[T]) Conflicts(ctx context.Context, e *T) (bool, error) {
	var rows []T
	if tx := r.db.WithContext(ctx).Find(&rows); tx.Error != nil {
		return false, tx.Error
	}
	for i := range rows {
		if (*e).ConflictsWith(rows[i]) {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts e after the uniqueness scan. The primary key is filled in on
// success. Returns ErrDuplicate on a collision and ErrNoRowsAffected when the
// insert persists nothing.
func (r *EntityRepository[T]) Add(ctx context.Context, e *T) error {
	dup, err := r.Conflicts(ctx, e)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicate
	}

	tx := r.db.WithContext(ctx).Create(e)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteByID finds then deletes. Not-found propagates as
// gorm.ErrRecordNotFound; a delete that removes nothing is ErrNoRowsAffected.
func (r *EntityRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	var e T
	if tx := r.db.WithContext(ctx).First(&e, id); tx.Error != nil {
		return tx.Error
	}
	tx := r.db.WithContext(ctx).Delete(&e)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
