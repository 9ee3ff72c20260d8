package catalog

import "furnex/internal/domain"

// ---------- ADD FORMS ----------

type ColorAddForm struct {
	Name    string `json:"name" binding:"required,max=128"`
	HexCode string `json:"hex_code" binding:"required,hexcolor"`
}

type RoomAddForm struct {
	Name string `json:"name" binding:"required,max=128"`
}

type CategoryAddForm struct {
	Name string `json:"name" binding:"required,max=128"`
}

type MaterialAddForm struct {
	Name string `json:"name" validate:"required,max=128"`
	Slug string `json:"slug" validate:"required,max=128"`
}

type PatternAddForm struct {
	Name string `json:"name" validate:"required,max=128"`
	Slug string `json:"slug" validate:"required,max=128"`
}

// ---------- RESPONSES ----------

type ColorResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MaterialResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Photo string `json:"photo"`
}

type PatternResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Photo string `json:"photo"`
}

// Mapping is explicit field-by-field so a schema change shows up as a compile
// error, not a silently dropped field.

func ToColorResponse(c domain.Color) ColorResponse {
	return ColorResponse{ID: c.ID, Name: c.Name, HexCode: c.HexCode}
}

func ToRoomResponse(r domain.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name}
}

func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToMaterialResponse(m domain.Material, photo string) MaterialResponse {
	return MaterialResponse{ID: m.ID, Name: m.Name, Slug: m.Slug, Photo: photo}
}

func ToPatternResponse(p domain.Pattern, photo string) PatternResponse {
	return PatternResponse{ID: p.ID, Name: p.Name, Slug: p.Slug, Photo: photo}
}
