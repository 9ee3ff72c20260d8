package domain

import "time"

// PieceOfFurniture is the top-level sellable item. It owns its photos and
// parts; the referenced category, room, color, material and pattern must exist
// before a piece can be created.
type PieceOfFurniture struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" gorm:"type:text"`
	Size        string  `json:"size"`
	Price       float64 `json:"price" validate:"gte=0"`
	Count       int     `json:"count" validate:"gte=0"`

	CategoryID int64 `json:"category_id"`
	RoomID     int64 `json:"room_id"`
	MaterialID int64 `json:"material_id"`
	PatternID  int64 `json:"pattern_id"`
	ColorID    int64 `json:"color_id"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Room     *Room     `json:"-" gorm:"foreignKey:RoomID"`
	Material *Material `json:"-" gorm:"foreignKey:MaterialID"`
	Pattern  *Pattern  `json:"-" gorm:"foreignKey:PatternID"`
	Color    *Color    `json:"-" gorm:"foreignKey:ColorID"`

	Photos []Photo `json:"-" gorm:"foreignKey:PieceOfFurnitureID"`
	Parts  []Part  `json:"-" gorm:"foreignKey:PieceOfFurnitureID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PieceOfFurniture) TableName() string { return "furniture" }

func (f PieceOfFurniture) ConflictsWith(other PieceOfFurniture) bool {
	return f.Name == other.Name
}

// Part is a component of a piece of furniture with its own color, pattern and
// material. A part starts unattached and is re-parented when furniture is
// created with its id.
type Part struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name" validate:"required,max=128"`
	Count int     `json:"count" validate:"gte=0"`
	Price float64 `json:"price" validate:"gte=0"`

	ColorID    int64 `json:"color_id"`
	PatternID  int64 `json:"pattern_id"`
	MaterialID int64 `json:"material_id"`

	PieceOfFurnitureID *int64 `json:"piece_of_furniture_id,omitempty" gorm:"index"`

	Color    *Color    `json:"-" gorm:"foreignKey:ColorID"`
	Pattern  *Pattern  `json:"-" gorm:"foreignKey:PatternID"`
	Material *Material `json:"-" gorm:"foreignKey:MaterialID"`
}

// Part names must be unique within the furniture they belong to. Two
// unattached parts with the same name also count as a conflict.
func (p Part) ConflictsWith(other Part) bool {
	if p.Name != other.Name {
		return false
	}
	if p.PieceOfFurnitureID == nil || other.PieceOfFurnitureID == nil {
		return p.PieceOfFurnitureID == nil && other.PieceOfFurnitureID == nil
	}
	return *p.PieceOfFurnitureID == *other.PieceOfFurnitureID
}

type Photo struct {
	ID                 int64  `json:"id"`
	PieceOfFurnitureID int64  `json:"piece_of_furniture_id" gorm:"index"`
	Path               string `json:"path"`
}
