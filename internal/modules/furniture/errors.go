package furniture

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrColorNotFound     = errors.New("color not found")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrPatternNotFound   = errors.New("pattern not found")
	ErrPartNotFound      = errors.New("part not found")
	ErrFurnitureExists   = errors.New("furniture with this name already exists")
	ErrPartExists        = errors.New("part with this name already exists")
	ErrFurnitureNotFound = errors.New("furniture not found")
)
