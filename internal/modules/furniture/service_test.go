package furniture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"furnex/internal/database"
	"furnex/internal/domain"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(db), db
}

type refs struct {
	category domain.Category
	room     domain.Room
	color    domain.Color
	material domain.Material
	pattern  domain.Pattern
}

func seedRefs(t *testing.T, db *gorm.DB) refs {
	t.Helper()
	r := refs{
		category: domain.Category{Name: "Sofas"},
		room:     domain.Room{Name: "Living room"},
		color:    domain.Color{Name: "Graphite", HexCode: "#383838"},
		material: domain.Material{Name: "Linen", Slug: "linen"},
		pattern:  domain.Pattern{Name: "Plain", Slug: "plain"},
	}
	require.NoError(t, db.Create(&r.category).Error)
	require.NoError(t, db.Create(&r.room).Error)
	require.NoError(t, db.Create(&r.color).Error)
	require.NoError(t, db.Create(&r.material).Error)
	require.NoError(t, db.Create(&r.pattern).Error)
	return r
}

func addForm(r refs) FurnitureAddForm {
	return FurnitureAddForm{
		Name:        "Gdansk three-seater",
		Description: "Oak frame, linen upholstery.",
		Size:        "220x95x88 cm",
		Price:       2499,
		Count:       2,
		CategoryID:  r.category.ID,
		RoomID:      r.room.ID,
		ColorID:     r.color.ID,
		MaterialID:  r.material.ID,
		PatternID:   r.pattern.ID,
	}
}

func TestAddFurniture_RoundTrip(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	part, err := svc.AddPart(ctx, PartAddForm{
		Name:       "Armrest",
		Count:      2,
		Price:      120,
		ColorID:    r.color.ID,
		MaterialID: r.material.ID,
		PatternID:  r.pattern.ID,
	})
	require.NoError(t, err)

	form := addForm(r)
	form.PartIDs = []int64{part.ID}

	piece, err := svc.AddFurniture(ctx, []string{"/uploads/furniture/sofa.jpg"}, form)
	require.NoError(t, err)

	assert.Equal(t, "Gdansk three-seater", piece.Name)
	require.NotNil(t, piece.Category)
	assert.Equal(t, "Sofas", piece.Category.Name)
	require.NotNil(t, piece.Room)
	assert.Equal(t, "Living room", piece.Room.Name)
	assert.Equal(t, []string{"/uploads/furniture/sofa.jpg"}, piece.Photos)
	require.Len(t, piece.Parts, 1)
	assert.Equal(t, "Armrest", piece.Parts[0].Name)
}

func TestAddFurniture_MissingRoom(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	form := addForm(r)
	form.RoomID = 999

	_, err := svc.AddFurniture(ctx, nil, form)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.PieceOfFurniture{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddFurniture_MissingCategory(t *testing.T) {
	svc, db := setupService(t)
	r := seedRefs(t, db)

	form := addForm(r)
	form.CategoryID = 999

	_, err := svc.AddFurniture(context.Background(), nil, form)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestAddFurniture_DuplicateName(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	_, err := svc.AddFurniture(ctx, nil, addForm(r))
	require.NoError(t, err)

	_, err = svc.AddFurniture(ctx, nil, addForm(r))
	assert.ErrorIs(t, err, ErrFurnitureExists)
}

func TestAddFurniture_MissingPart(t *testing.T) {
	svc, db := setupService(t)
	r := seedRefs(t, db)

	form := addForm(r)
	form.PartIDs = []int64{999}

	_, err := svc.AddFurniture(context.Background(), nil, form)
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestAddPart_DuplicateUnattachedName(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	form := PartAddForm{Name: "Leg", ColorID: r.color.ID, MaterialID: r.material.ID, PatternID: r.pattern.ID}
	_, err := svc.AddPart(ctx, form)
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, form)
	assert.ErrorIs(t, err, ErrPartExists)
}

func TestAddPart_MissingColor(t *testing.T) {
	svc, db := setupService(t)
	r := seedRefs(t, db)

	_, err := svc.AddPart(context.Background(), PartAddForm{
		Name:       "Leg",
		ColorID:    999,
		MaterialID: r.material.ID,
		PatternID:  r.pattern.ID,
	})
	assert.ErrorIs(t, err, ErrColorNotFound)
}

func TestRemoveFurniture_FreesPartsAndName(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	part, err := svc.AddPart(ctx, PartAddForm{
		Name:       "Armrest",
		ColorID:    r.color.ID,
		MaterialID: r.material.ID,
		PatternID:  r.pattern.ID,
	})
	require.NoError(t, err)

	form := addForm(r)
	form.PartIDs = []int64{part.ID}
	piece, err := svc.AddFurniture(ctx, nil, form)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFurniture(ctx, piece.ID))

	_, err = svc.GetPieceOfFurniture(ctx, piece.ID)
	assert.ErrorIs(t, err, ErrFurnitureNotFound)

	freed, err := svc.GetPart(ctx, part.ID)
	require.NoError(t, err)
	assert.Nil(t, freed.PieceOfFurnitureID)

	// the name is reusable once the piece is gone
	_, err = svc.AddFurniture(ctx, nil, addForm(r))
	assert.NoError(t, err)
}

func TestAddPart_AttachedToMissingFurniture(t *testing.T) {
	svc, db := setupService(t)
	r := seedRefs(t, db)

	missing := int64(999)
	_, err := svc.AddPart(context.Background(), PartAddForm{
		Name:               "Backrest",
		ColorID:            r.color.ID,
		MaterialID:         r.material.ID,
		PatternID:          r.pattern.ID,
		PieceOfFurnitureID: &missing,
	})
	assert.ErrorIs(t, err, ErrFurnitureNotFound)
}

// A furniture row whose category was removed underneath it reads as a
// descriptive not-found, not a half-empty response.
func TestGetPieceOfFurniture_DanglingCategory(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	r := seedRefs(t, db)

	piece, err := svc.AddFurniture(ctx, nil, addForm(r))
	require.NoError(t, err)

	require.NoError(t, db.Delete(&domain.Category{}, r.category.ID).Error)

	_, err = svc.GetPieceOfFurniture(ctx, piece.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestRemovePart_Missing(t *testing.T) {
	svc, db := setupService(t)
	seedRefs(t, db)

	err := svc.RemovePart(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPartNotFound)
}
