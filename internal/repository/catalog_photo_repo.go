package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"furnex/internal/domain"
)

// CatalogPhotoRepository handles the single photo row each material and
// pattern owns by convention. The 1:1 shape is a code assumption, not a
// schema constraint; lookups for a missing photo return an empty path.
type CatalogPhotoRepository struct {
	db *gorm.DB
}

func NewCatalogPhotoRepository(db *gorm.DB) *CatalogPhotoRepository {
	return &CatalogPhotoRepository{db: db}
}

func (r *CatalogPhotoRepository) AddMaterialPhoto(ctx context.Context, materialID int64, path string) error {
	photo := domain.MaterialPhoto{MaterialID: materialID, Path: path}
	tx := r.db.WithContext(ctx).Create(&photo)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *CatalogPhotoRepository) AddPatternPhoto(ctx context.Context, patternID int64, path string) error {
	photo := domain.PatternPhoto{PatternID: patternID, Path: path}
	tx := r.db.WithContext(ctx).Create(&photo)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteMaterialPhoto removes the material's photo row if one exists.
func (r *CatalogPhotoRepository) DeleteMaterialPhoto(ctx context.Context, materialID int64) error {
	return r.db.WithContext(ctx).Where("material_id = ?", materialID).Delete(&domain.MaterialPhoto{}).Error
}

func (r *CatalogPhotoRepository) DeletePatternPhoto(ctx context.Context, patternID int64) error {
	return r.db.WithContext(ctx).Where("pattern_id = ?", patternID).Delete(&domain.PatternPhoto{}).Error
}

func (r *CatalogPhotoRepository) MaterialPhotoPath(ctx context.Context, materialID int64) (string, error) {
	var photo domain.MaterialPhoto
	tx := r.db.WithContext(ctx).Where("material_id = ?", materialID).First(&photo)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", tx.Error
	}
	return photo.Path, nil
}

func (r *CatalogPhotoRepository) PatternPhotoPath(ctx context.Context, patternID int64) (string, error) {
	var photo domain.PatternPhoto
	tx := r.db.WithContext(ctx).Where("pattern_id = ?", patternID).First(&photo)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", tx.Error
	}
	return photo.Path, nil
}

func (r *CatalogPhotoRepository) AllMaterialPhotos(ctx context.Context) (map[int64]string, error) {
	var rows []domain.MaterialPhoto
	if tx := r.db.WithContext(ctx).Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	paths := make(map[int64]string, len(rows))
	for _, row := range rows {
		paths[row.MaterialID] = row.Path
	}
	return paths, nil
}

func (r *CatalogPhotoRepository) AllPatternPhotos(ctx context.Context) (map[int64]string, error) {
	var rows []domain.PatternPhoto
	if tx := r.db.WithContext(ctx).Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	paths := make(map[int64]string, len(rows))
	for _, row := range rows {
		paths[row.PatternID] = row.Path
	}
	return paths, nil
}
