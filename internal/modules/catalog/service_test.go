package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"furnex/internal/database"
	"furnex/internal/domain"
	"furnex/internal/repository"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewService(
		repository.NewEntityRepository[domain.Color](db),
		repository.NewEntityRepository[domain.Room](db),
		repository.NewEntityRepository[domain.Category](db),
		repository.NewEntityRepository[domain.Material](db),
		repository.NewEntityRepository[domain.Pattern](db),
		repository.NewCatalogPhotoRepository(db),
	)
}

func TestAddColor_DuplicateHexRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddColor(ctx, ColorAddForm{Name: "Graphite", HexCode: "#383838"})
	require.NoError(t, err)

	_, err = svc.AddColor(ctx, ColorAddForm{Name: "Coal", HexCode: "#383838"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestAddMaterial_PhotoRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.AddMaterial(ctx, "/uploads/materials/oak.jpg", MaterialAddForm{Name: "Oak wood", Slug: "oak-wood"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/materials/oak.jpg", created.Photo)

	got, err := svc.GetMaterial(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak wood", got.Name)
	assert.Equal(t, "oak-wood", got.Slug)
	assert.Equal(t, "/uploads/materials/oak.jpg", got.Photo)
}

func TestGetMaterials_MergesPhotos(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddMaterial(ctx, "/uploads/materials/oak.jpg", MaterialAddForm{Name: "Oak wood", Slug: "oak-wood"})
	require.NoError(t, err)
	_, err = svc.AddMaterial(ctx, "/uploads/materials/linen.jpg", MaterialAddForm{Name: "Linen", Slug: "linen"})
	require.NoError(t, err)

	materials, err := svc.GetMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 2)

	byName := map[string]string{}
	for _, m := range materials {
		byName[m.Name] = m.Photo
	}
	assert.Equal(t, "/uploads/materials/oak.jpg", byName["Oak wood"])
	assert.Equal(t, "/uploads/materials/linen.jpg", byName["Linen"])
}

func TestAddPattern_DuplicateSlugRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddPattern(ctx, "/uploads/patterns/a.jpg", PatternAddForm{Name: "Herringbone", Slug: "herringbone"})
	require.NoError(t, err)

	_, err = svc.AddPattern(ctx, "/uploads/patterns/b.jpg", PatternAddForm{Name: "Fishbone", Slug: "herringbone"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRemoveMaterial_DropsPhotoRow(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.AddMaterial(ctx, "/uploads/materials/oak.jpg", MaterialAddForm{Name: "Oak wood", Slug: "oak-wood"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMaterial(ctx, created.ID))

	_, err = svc.GetMaterial(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the slug is reusable once the material is gone
	_, err = svc.AddMaterial(ctx, "/uploads/materials/oak2.jpg", MaterialAddForm{Name: "Oak again", Slug: "oak-wood"})
	assert.NoError(t, err)
}

func TestRemoveColor_Missing(t *testing.T) {
	svc := setupService(t)

	err := svc.RemoveColor(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetRoom_NotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetRoom(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
