package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Entity
	Name           string          `gorm:"size:150;not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	StockAmount    *int
	ExpirationDate *time.Time
	CategoryID     uint `gorm:"index"`
	Category       Category
	ProductStores  []ProductStore
}

// StoreIDs collects the store foreign keys of the loaded join rows.
func (p *Product) StoreIDs() []uint {
	ids := make([]uint, 0, len(p.ProductStores))
	for _, ps := range p.ProductStores {
		ids = append(ids, ps.StoreID)
	}
	return ids
}

// ProductStore is the join entity of the product/store many-to-many
// association. Rows are rewritten wholesale whenever a product's store
// set changes.
type ProductStore struct {
	Entity
	ProductID uint `gorm:"index"`
	Product   *Product
	StoreID   uint `gorm:"index"`
	Store     *Store
}
