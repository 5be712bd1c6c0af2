package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product as stored in the database.
type Product struct {
	ID        int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string          `json:"name" gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductDTO is the wire representation of a product. It mirrors the
// entity field for field but is created per request and never stored.
type ProductDTO struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MarshalJSON writes price as a bare JSON number. decimal.Decimal
// quotes its value by default, which would put a string on the wire.
func (d ProductDTO) MarshalJSON() ([]byte, error) {
	type alias ProductDTO
	return json.Marshal(struct {
		alias
		Price json.RawMessage `json:"price"`
	}{
		alias: alias(d),
		Price: json.RawMessage(d.Price.String()),
	})
}

// ToDTO maps the stored product to its wire representation.
func (p *Product) ToDTO() ProductDTO {
	return ProductDTO{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

// ToProduct maps the wire representation to a storable product.
func (d *ProductDTO) ToProduct() Product {
	return Product{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
	}
}
