package repositories

import (
	"errors"

	"katalog/internal/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	Upsert(product *models.Product) error
}
