package domain

// Reference entities for the furniture catalog. Uniqueness is enforced by a
// pre-insert scan in the repository layer, not by database constraints: each
// entity reports a conflict when any of its uniqueness fields matches an
// existing row.

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=128"`
}

func (Category) TableName() string { return "categories" }

func (c Category) ConflictsWith(other Category) bool {
	return c.Name == other.Name
}

type Room struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=128"`
}

func (r Room) ConflictsWith(other Room) bool {
	return r.Name == other.Name
}

type Color struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required,max=128"`
	HexCode string `json:"hex_code" validate:"required,hexcolor"`
}

func (c Color) ConflictsWith(other Color) bool {
	return c.Name == other.Name || c.HexCode == other.HexCode
}

type Material struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name" validate:"required,max=128"`
	Slug  string         `json:"slug" validate:"required,max=128"`
	Photo *MaterialPhoto `json:"-" gorm:"foreignKey:MaterialID"`
}

func (m Material) ConflictsWith(other Material) bool {
	return m.Name == other.Name || m.Slug == other.Slug
}

type MaterialPhoto struct {
	ID         int64  `json:"id"`
	MaterialID int64  `json:"material_id" gorm:"index"`
	Path       string `json:"path"`
}

type Pattern struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name" validate:"required,max=128"`
	Slug  string        `json:"slug" validate:"required,max=128"`
	Photo *PatternPhoto `json:"-" gorm:"foreignKey:PatternID"`
}

func (p Pattern) ConflictsWith(other Pattern) bool {
	return p.Name == other.Name || p.Slug == other.Slug
}

type PatternPhoto struct {
	ID        int64  `json:"id"`
	PatternID int64  `json:"pattern_id" gorm:"index"`
	Path      string `json:"path"`
}
