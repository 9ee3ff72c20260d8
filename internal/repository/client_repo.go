package repository

import (
	"context"

	"gorm.io/gorm"

	"furnex/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	var c domain.Client
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	tx := r.db.WithContext(ctx).Save(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
