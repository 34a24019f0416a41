package dto

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Barcode     string  `json:"barcode"`
	Price       float64 `json:"price" validate:"gt=0"`
	Cost        float64 `json:"cost" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	SupplierID  int64   `json:"supplier_id" validate:"required"`
}

type UpdateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Barcode     string  `json:"barcode"`
	Price       float64 `json:"price" validate:"gt=0"`
	Cost        float64 `json:"cost" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	SupplierID  int64   `json:"supplier_id" validate:"required"`
}
