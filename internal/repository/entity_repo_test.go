package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"furnex/internal/database"
	"furnex/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestEntityRepository_AddAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Room](db)
	ctx := context.Background()

	room := domain.Room{Name: "Bedroom"}
	require.NoError(t, repo.Add(ctx, &room))
	require.NotZero(t, room.ID)

	got, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bedroom", got.Name)
}

func TestEntityRepository_GetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Room](db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEntityRepository_GetAll_Empty(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Category](db)

	rows, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// A color conflicts when either its name or its hex code is already taken.
func TestEntityRepository_DuplicateOnAnyField(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Color](db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &domain.Color{Name: "Graphite", HexCode: "#383838"}))

	sameName := domain.Color{Name: "Graphite", HexCode: "#000000"}
	assert.ErrorIs(t, repo.Add(ctx, &sameName), ErrDuplicate)

	sameHex := domain.Color{Name: "Coal", HexCode: "#383838"}
	assert.ErrorIs(t, repo.Add(ctx, &sameHex), ErrDuplicate)

	distinct := domain.Color{Name: "Snow", HexCode: "#FAFAFA"}
	assert.NoError(t, repo.Add(ctx, &distinct))
}

// Part names are scoped to their furniture: two unattached parts with the
// same name conflict, attached ones only conflict within the same piece.
func TestEntityRepository_PartConflictScope(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Part](db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &domain.Part{Name: "Leg"}))
	assert.ErrorIs(t, repo.Add(ctx, &domain.Part{Name: "Leg"}), ErrDuplicate)

	pieceA, pieceB := int64(1), int64(2)
	require.NoError(t, repo.Add(ctx, &domain.Part{Name: "Shelf", PieceOfFurnitureID: &pieceA}))
	assert.NoError(t, repo.Add(ctx, &domain.Part{Name: "Shelf", PieceOfFurnitureID: &pieceB}))

	again := domain.Part{Name: "Shelf", PieceOfFurnitureID: &pieceA}
	assert.ErrorIs(t, repo.Add(ctx, &again), ErrDuplicate)
}

func TestEntityRepository_DeleteByID(t *testing.T) {
	db := setupDB(t)
	repo := NewEntityRepository[domain.Room](db)
	ctx := context.Background()

	room := domain.Room{Name: "Office"}
	require.NoError(t, repo.Add(ctx, &room))

	require.NoError(t, repo.DeleteByID(ctx, room.ID))

	_, err := repo.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.DeleteByID(ctx, room.ID), gorm.ErrRecordNotFound)
}
