package catalog

import (
	"context"

	"furnex/internal/domain"
	"furnex/internal/repository"
)

// Service exposes the reference entities of the catalog: colors, rooms,
// categories, materials and patterns. Every insert goes through the generic
// duplicate-checked repository; materials and patterns additionally carry a
// photo row.
type Service struct {
	colors     *repository.EntityRepository[domain.Color]
	rooms      *repository.EntityRepository[domain.Room]
	categories *repository.EntityRepository[domain.Category]
	materials  *repository.EntityRepository[domain.Material]
	patterns   *repository.EntityRepository[domain.Pattern]
	photos     *repository.CatalogPhotoRepository
}

func NewService(
	colors *repository.EntityRepository[domain.Color],
	rooms *repository.EntityRepository[domain.Room],
	categories *repository.EntityRepository[domain.Category],
	materials *repository.EntityRepository[domain.Material],
	patterns *repository.EntityRepository[domain.Pattern],
	photos *repository.CatalogPhotoRepository,
) *Service {
	return &Service{
		colors:     colors,
		rooms:      rooms,
		categories: categories,
		materials:  materials,
		patterns:   patterns,
		photos:     photos,
	}
}

/* ---------- COLORS ---------- */

func (s *Service) AddColor(ctx context.Context, req ColorAddForm) (*ColorResponse, error) {
	color := domain.Color{Name: req.Name, HexCode: req.HexCode}
	if err := s.colors.Add(ctx, &color); err != nil {
		return nil, err
	}
	resp := ToColorResponse(color)
	return &resp, nil
}

func (s *Service) GetColor(ctx context.Context, id int64) (*ColorResponse, error) {
	color, err := s.colors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToColorResponse(*color)
	return &resp, nil
}

func (s *Service) GetColors(ctx context.Context) ([]ColorResponse, error) {
	colors, err := s.colors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ColorResponse, 0, len(colors))
	for _, c := range colors {
		resp = append(resp, ToColorResponse(c))
	}
	return resp, nil
}

/* ---------- ROOMS ---------- */

func (s *Service) AddRoom(ctx context.Context, req RoomAddForm) (*RoomResponse, error) {
	room := domain.Room{Name: req.Name}
	if err := s.rooms.Add(ctx, &room); err != nil {
		return nil, err
	}
	resp := ToRoomResponse(room)
	return &resp, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*RoomResponse, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRoomResponse(*room)
	return &resp, nil
}

func (s *Service) GetRooms(ctx context.Context) ([]RoomResponse, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, ToRoomResponse(r))
	}
	return resp, nil
}

/* ---------- CATEGORIES ---------- */

func (s *Service) AddCategory(ctx context.Context, req CategoryAddForm) (*CategoryResponse, error) {
	category := domain.Category{Name: req.Name}
	if err := s.categories.Add(ctx, &category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(*category)
	return &resp, nil
}

func (s *Service) GetCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, ToCategoryResponse(c))
	}
	return resp, nil
}

/* ---------- REMOVAL ---------- */

func (s *Service) RemoveColor(ctx context.Context, id int64) error {
	return s.colors.DeleteByID(ctx, id)
}

func (s *Service) RemoveRoom(ctx context.Context, id int64) error {
	return s.rooms.DeleteByID(ctx, id)
}

func (s *Service) RemoveCategory(ctx context.Context, id int64) error {
	return s.categories.DeleteByID(ctx, id)
}

// RemoveMaterial deletes the material and the photo row it owns.
func (s *Service) RemoveMaterial(ctx context.Context, id int64) error {
	if err := s.materials.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.photos.DeleteMaterialPhoto(ctx, id)
}

func (s *Service) RemovePattern(ctx context.Context, id int64) error {
	if err := s.patterns.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.photos.DeletePatternPhoto(ctx, id)
}

/* ---------- MATERIALS ---------- */

// AddMaterial inserts the material and then its photo row. A photo insert
// that persists nothing surfaces as repository.ErrNoRowsAffected.
func (s *Service) AddMaterial(ctx context.Context, photoPath string, req MaterialAddForm) (*MaterialResponse, error) {
	material := domain.Material{Name: req.Name, Slug: req.Slug}
	if err := s.materials.Add(ctx, &material); err != nil {
		return nil, err
	}
	if err := s.photos.AddMaterialPhoto(ctx, material.ID, photoPath); err != nil {
		return nil, err
	}
	resp := ToMaterialResponse(material, photoPath)
	return &resp, nil
}

func (s *Service) GetMaterial(ctx context.Context, id int64) (*MaterialResponse, error) {
	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	photo, err := s.photos.MaterialPhotoPath(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMaterialResponse(*material, photo)
	return &resp, nil
}

func (s *Service) GetMaterials(ctx context.Context) ([]MaterialResponse, error) {
	materials, err := s.materials.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.AllMaterialPhotos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, ToMaterialResponse(m, photos[m.ID]))
	}
	return resp, nil
}

/* ---------- PATTERNS ---------- */

func (s *Service) AddPattern(ctx context.Context, photoPath string, req PatternAddForm) (*PatternResponse, error) {
	pattern := domain.Pattern{Name: req.Name, Slug: req.Slug}
	if err := s.patterns.Add(ctx, &pattern); err != nil {
		return nil, err
	}
	if err := s.photos.AddPatternPhoto(ctx, pattern.ID, photoPath); err != nil {
		return nil, err
	}
	resp := ToPatternResponse(pattern, photoPath)
	return &resp, nil
}

func (s *Service) GetPattern(ctx context.Context, id int64) (*PatternResponse, error) {
	pattern, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	photo, err := s.photos.PatternPhotoPath(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPatternResponse(*pattern, photo)
	return &resp, nil
}

func (s *Service) GetPatterns(ctx context.Context) ([]PatternResponse, error) {
	patterns, err := s.patterns.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.AllPatternPhotos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		resp = append(resp, ToPatternResponse(p, photos[p.ID]))
	}
	return resp, nil
}
