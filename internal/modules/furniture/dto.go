package furniture

import (
	"furnex/internal/domain"
	"furnex/internal/modules/catalog"
)

// FurnitureAddForm is the JSON "data" part of the multipart add request.
// The photos travel alongside it as files.
type FurnitureAddForm struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Count       int     `json:"count" validate:"gte=0"`

	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
	RoomID     int64 `json:"room_id" validate:"required,gt=0"`
	ColorID    int64 `json:"color_id" validate:"required,gt=0"`
	MaterialID int64 `json:"material_id" validate:"required,gt=0"`
	PatternID  int64 `json:"pattern_id" validate:"required,gt=0"`

	PartIDs []int64 `json:"part_ids"`
}

type PartAddForm struct {
	Name  string  `json:"name" binding:"required,max=128"`
	Count int     `json:"count" binding:"gte=0"`
	Price float64 `json:"price" binding:"gte=0"`

	ColorID    int64 `json:"color_id" binding:"required,gt=0"`
	MaterialID int64 `json:"material_id" binding:"required,gt=0"`
	PatternID  int64 `json:"pattern_id" binding:"required,gt=0"`

	// Optional; a part created without one stays unattached until furniture
	// claims it by id.
	PieceOfFurnitureID *int64 `json:"piece_of_furniture_id" binding:"omitempty,gt=0"`
}

type PartResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Price float64 `json:"price"`

	PieceOfFurnitureID *int64 `json:"piece_of_furniture_id,omitempty"`

	Color    *catalog.ColorResponse    `json:"color,omitempty"`
	Material *catalog.MaterialResponse `json:"material,omitempty"`
	Pattern  *catalog.PatternResponse  `json:"pattern,omitempty"`
}

type FurnitureResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Count       int     `json:"count"`

	Category *catalog.CategoryResponse `json:"category,omitempty"`
	Room     *catalog.RoomResponse     `json:"room,omitempty"`
	Color    *catalog.ColorResponse    `json:"color,omitempty"`
	Material *catalog.MaterialResponse `json:"material,omitempty"`
	Pattern  *catalog.PatternResponse  `json:"pattern,omitempty"`

	Photos []string       `json:"photos"`
	Parts  []PartResponse `json:"parts"`
}

// ToPartResponse maps a part with whatever relations are loaded on it.
func ToPartResponse(p domain.Part) PartResponse {
	resp := PartResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Count:              p.Count,
		Price:              p.Price,
		PieceOfFurnitureID: p.PieceOfFurnitureID,
	}
	if p.Color != nil {
		c := catalog.ToColorResponse(*p.Color)
		resp.Color = &c
	}
	if p.Material != nil {
		m := catalog.ToMaterialResponse(*p.Material, materialPhotoPath(p.Material))
		resp.Material = &m
	}
	if p.Pattern != nil {
		pt := catalog.ToPatternResponse(*p.Pattern, patternPhotoPath(p.Pattern))
		resp.Pattern = &pt
	}
	return resp
}

func ToFurnitureResponse(f domain.PieceOfFurniture) FurnitureResponse {
	resp := FurnitureResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Size:        f.Size,
		Price:       f.Price,
		Count:       f.Count,
		Photos:      make([]string, 0, len(f.Photos)),
		Parts:       make([]PartResponse, 0, len(f.Parts)),
	}

	if f.Category != nil {
		c := catalog.ToCategoryResponse(*f.Category)
		resp.Category = &c
	}
	if f.Room != nil {
		r := catalog.ToRoomResponse(*f.Room)
		resp.Room = &r
	}
	if f.Color != nil {
		c := catalog.ToColorResponse(*f.Color)
		resp.Color = &c
	}
	if f.Material != nil {
		m := catalog.ToMaterialResponse(*f.Material, materialPhotoPath(f.Material))
		resp.Material = &m
	}
	if f.Pattern != nil {
		p := catalog.ToPatternResponse(*f.Pattern, patternPhotoPath(f.Pattern))
		resp.Pattern = &p
	}

	for _, photo := range f.Photos {
		resp.Photos = append(resp.Photos, photo.Path)
	}
	for _, part := range f.Parts {
		resp.Parts = append(resp.Parts, ToPartResponse(part))
	}

	return resp
}

func materialPhotoPath(m *domain.Material) string {
	if m.Photo == nil {
		return ""
	}
	return m.Photo.Path
}

func patternPhotoPath(p *domain.Pattern) string {
	if p.Photo == nil {
		return ""
	}
	return p.Photo.Path
}
