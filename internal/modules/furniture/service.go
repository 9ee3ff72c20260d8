package furniture

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"furnex/internal/domain"
	"furnex/internal/repository"
)

type Service struct {
	furniture  *repository.FurnitureRepository
	parts      *repository.EntityRepository[domain.Part]
	categories *repository.EntityRepository[domain.Category]
	rooms      *repository.EntityRepository[domain.Room]
	colors     *repository.EntityRepository[domain.Color]
	materials  *repository.EntityRepository[domain.Material]
	patterns   *repository.EntityRepository[domain.Pattern]
	photos     *repository.CatalogPhotoRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		furniture:  repository.NewFurnitureRepository(db),
		parts:      repository.NewEntityRepository[domain.Part](db),
		categories: repository.NewEntityRepository[domain.Category](db),
		rooms:      repository.NewEntityRepository[domain.Room](db),
		colors:     repository.NewEntityRepository[domain.Color](db),
		materials:  repository.NewEntityRepository[domain.Material](db),
		patterns:   repository.NewEntityRepository[domain.Pattern](db),
		photos:     repository.NewCatalogPhotoRepository(db),
	}
}

// AddFurniture validates that the referenced category and room exist, rejects
// duplicate names, then creates the piece together with its photos and
// re-parents the listed parts. Everything past the checks runs in one
// transaction inside the repository.
func (s *Service) AddFurniture(ctx context.Context, photoPaths []string, req FurnitureAddForm) (*FurnitureResponse, error) {
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	taken, err := s.furniture.NameTaken(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrFurnitureExists
	}

	piece := domain.PieceOfFurniture{
		Name:        req.Name,
		Description: req.Description,
		Size:        req.Size,
		Price:       req.Price,
		Count:       req.Count,
		CategoryID:  req.CategoryID,
		RoomID:      req.RoomID,
		ColorID:     req.ColorID,
		MaterialID:  req.MaterialID,
		PatternID:   req.PatternID,
	}

	if err := s.furniture.Create(ctx, &piece, photoPaths, req.PartIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}

	return s.GetPieceOfFurniture(ctx, piece.ID)
}

func (s *Service) GetPieceOfFurniture(ctx context.Context, id int64) (*FurnitureResponse, error) {
	piece, err := s.furniture.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFurnitureNotFound
		}
		return nil, err
	}
	if err := checkReferences(piece); err != nil {
		return nil, err
	}
	resp := ToFurnitureResponse(*piece)
	return &resp, nil
}

func (s *Service) GetAllFurniture(ctx context.Context) ([]FurnitureResponse, error) {
	pieces, err := s.furniture.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FurnitureResponse, 0, len(pieces))
	for i := range pieces {
		if err := checkReferences(&pieces[i]); err != nil {
			return nil, err
		}
		out = append(out, ToFurnitureResponse(pieces[i]))
	}
	return out, nil
}

// checkReferences surfaces a furniture row whose category or room was removed
// underneath it as a descriptive not-found instead of a half-empty response.
func checkReferences(piece *domain.PieceOfFurniture) error {
	if piece.Category == nil {
		return fmt.Errorf("%w: furniture %d references category %d", ErrCategoryNotFound, piece.ID, piece.CategoryID)
	}
	if piece.Room == nil {
		return fmt.Errorf("%w: furniture %d references room %d", ErrRoomNotFound, piece.ID, piece.RoomID)
	}
	return nil
}

func (s *Service) RemoveFurniture(ctx context.Context, id int64) error {
	err := s.furniture.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFurnitureNotFound
	}
	return err
}

// AddPart creates an unattached part after resolving its color, material and
// pattern. The part is attached to furniture later, by id, when the furniture
// is created.
func (s *Service) AddPart(ctx context.Context, req PartAddForm) (*PartResponse, error) {
	if _, err := s.colors.GetByID(ctx, req.ColorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, err
	}
	if _, err := s.materials.GetByID(ctx, req.MaterialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	if _, err := s.patterns.GetByID(ctx, req.PatternID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatternNotFound
		}
		return nil, err
	}
	if req.PieceOfFurnitureID != nil {
		if _, err := s.furniture.GetByID(ctx, *req.PieceOfFurnitureID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFurnitureNotFound
			}
			return nil, err
		}
	}

	part := domain.Part{
		Name:               req.Name,
		Count:              req.Count,
		Price:              req.Price,
		ColorID:            req.ColorID,
		MaterialID:         req.MaterialID,
		PatternID:          req.PatternID,
		PieceOfFurnitureID: req.PieceOfFurnitureID,
	}
	if err := s.parts.Add(ctx, &part); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPartExists
		}
		return nil, err
	}

	return s.GetPart(ctx, part.ID)
}

func (s *Service) GetPart(ctx context.Context, id int64) (*PartResponse, error) {
	part, err := s.parts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	if err := s.loadPartRelations(ctx, part); err != nil {
		return nil, err
	}
	resp := ToPartResponse(*part)
	return &resp, nil
}

func (s *Service) GetParts(ctx context.Context) ([]PartResponse, error) {
	parts, err := s.parts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartResponse, 0, len(parts))
	for i := range parts {
		if err := s.loadPartRelations(ctx, &parts[i]); err != nil {
			return nil, err
		}
		out = append(out, ToPartResponse(parts[i]))
	}
	return out, nil
}

func (s *Service) RemovePart(ctx context.Context, id int64) error {
	err := s.parts.DeleteByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPartNotFound
	}
	return err
}

// loadPartRelations fills in the part's color, material and pattern. A
// dangling reference is tolerated on reads and left nil.
func (s *Service) loadPartRelations(ctx context.Context, part *domain.Part) error {
	color, err := s.colors.GetByID(ctx, part.ColorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	part.Color = color

	material, err := s.materials.GetByID(ctx, part.MaterialID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if material != nil {
		path, err := s.photos.MaterialPhotoPath(ctx, material.ID)
		if err != nil {
			return err
		}
		if path != "" {
			material.Photo = &domain.MaterialPhoto{MaterialID: material.ID, Path: path}
		}
	}
	part.Material = material

	pattern, err := s.patterns.GetByID(ctx, part.PatternID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if pattern != nil {
		path, err := s.photos.PatternPhotoPath(ctx, pattern.ID)
		if err != nil {
			return err
		}
		if path != "" {
			pattern.Photo = &domain.PatternPhoto{PatternID: pattern.ID, Path: path}
		}
	}
	part.Pattern = pattern

	return nil
}
