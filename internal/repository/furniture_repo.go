package repository

import (
	"context"

	"gorm.io/gorm"

	"furnex/internal/domain"
)

type FurnitureRepository struct {
	db *gorm.DB
}

func NewFurnitureRepository(db *gorm.DB) *FurnitureRepository {
	return &FurnitureRepository{db: db}
}

var furniturePreloads = []string{
	"Category",
	"Room",
	"Color",
	"Material",
	"Material.Photo",
	"Pattern",
	"Pattern.Photo",
	"Photos",
	"Parts",
	"Parts.Color",
	"Parts.Pattern",
	"Parts.Material",
}

func withFurniturePreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range furniturePreloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *FurnitureRepository) GetByID(ctx context.Context, id int64) (*domain.PieceOfFurniture, error) {
	var f domain.PieceOfFurniture
	tx := withFurniturePreloads(r.db.WithContext(ctx)).First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FurnitureRepository) GetAll(ctx context.Context) ([]domain.PieceOfFurniture, error) {
	rows := make([]domain.PieceOfFurniture, 0)
	tx := withFurniturePreloads(r.db.WithContext(ctx)).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *FurnitureRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&domain.PieceOfFurniture{}).
		Where("name = ?", name).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

// Create inserts the furniture row, its photo rows and re-parents the
// referenced parts in one transaction, so a failed later step leaves no
// partial writes behind. A part id that does not resolve aborts with
// gorm.ErrRecordNotFound.
func (r *FurnitureRepository) Create(ctx context.Context, f *domain.PieceOfFurniture, photoPaths []string, partIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}

		for _, path := range photoPaths {
			photo := domain.Photo{PieceOfFurnitureID: f.ID, Path: path}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}

		for _, partID := range partIDs {
			var part domain.Part
			if err := tx.First(&part, partID).Error; err != nil {
				return err
			}
			part.PieceOfFurnitureID = &f.ID
			if err := tx.Save(&part).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the piece together with its photos and detaches its parts.
// The parent owns the photos; parts survive and become reusable.
func (r *FurnitureRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f domain.PieceOfFurniture
		if err := tx.First(&f, id).Error; err != nil {
			return err
		}

		if err := tx.Where("piece_of_furniture_id = ?", id).Delete(&domain.Photo{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Part{}).
			Where("piece_of_furniture_id = ?", id).
			Update("piece_of_furniture_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&f)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoRowsAffected
		}
		return nil
	})
}
