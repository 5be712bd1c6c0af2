package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

func TestMemoryProductRepository_GetAllOrderedByID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	// Write out of id order; GetAll sorts by primary key, the same
	// order the GORM implementation returns.
	for _, id := range []int64{3, 1, 2} {
		p := &models.Product{ID: id, Name: "Product", Price: decimal.NewFromInt(10)}
		assert.NoError(t, repo.Upsert(p))
	}

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	for i, id := range []int64{1, 2, 3} {
		assert.Equal(t, id, all[i].ID)
	}
}

func TestMemoryProductRepository_UpsertOverwrites(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	assert.NoError(t, repo.Upsert(&models.Product{ID: 1, Name: "Old Name", Price: decimal.NewFromInt(10)}))
	assert.NoError(t, repo.Upsert(&models.Product{ID: 1, Name: "New Name", Price: decimal.NewFromInt(15)}))

	got, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryProductRepository_GetByID_NotFound(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	got, err := repo.GetByID(42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
