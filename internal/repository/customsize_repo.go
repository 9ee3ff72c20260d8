package repository

import (
	"context"

	"gorm.io/gorm"

	"furnex/internal/domain"
)

type CustomSizeRepository struct {
	db *gorm.DB
}

func NewCustomSizeRepository(db *gorm.DB) *CustomSizeRepository {
	return &CustomSizeRepository{db: db}
}

func (r *CustomSizeRepository) Create(ctx context.Context, f *domain.CustomSizeForm) error {
	tx := r.db.WithContext(ctx).Create(f)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *CustomSizeRepository) GetByID(ctx context.Context, id int64) (*domain.CustomSizeForm, error) {
	var f domain.CustomSizeForm
	tx := r.db.WithContext(ctx).First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

// GetByIDForClient scopes the lookup to the owning client, so one client
// cannot read another's form by id.
func (r *CustomSizeRepository) GetByIDForClient(ctx context.Context, id, clientID int64) (*domain.CustomSizeForm, error) {
	var f domain.CustomSizeForm
	tx := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", id, clientID).
		First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *CustomSizeRepository) GetAll(ctx context.Context) ([]domain.CustomSizeForm, error) {
	rows := make([]domain.CustomSizeForm, 0)
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *CustomSizeRepository) GetByClientID(ctx context.Context, clientID int64) ([]domain.CustomSizeForm, error) {
	rows := make([]domain.CustomSizeForm, 0)
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *CustomSizeRepository) Update(ctx context.Context, f *domain.CustomSizeForm) error {
	tx := r.db.WithContext(ctx).Save(f)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
