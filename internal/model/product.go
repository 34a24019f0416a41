package model

import "time"

type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	SKU         string     `json:"sku"`
	Barcode     string     `json:"barcode"`
	Price       float64    `json:"price"`
	Cost        float64    `json:"cost"`
	Stock       int        `json:"stock"`
	MinQuantity int        `json:"min_quantity"`
	CategoryID  int64      `json:"category_id"`
	SupplierID  int64      `json:"supplier_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	Category    *Category  `json:"category,omitempty"` // Joined data
	Supplier    *Supplier  `json:"supplier,omitempty"` // Joined data
}

// LowStock reports whether available stock has fallen below the
// product's reorder threshold.
func (p Product) LowStock() bool {
	return p.Stock < p.MinQuantity
}
