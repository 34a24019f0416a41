package dto

import "time"

type CreateSaleInput struct {
	ProductID  int64   `json:"product_id" validate:"required"`
	CustomerID int64   `json:"customer_id" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
	UnitPrice  float64 `json:"unit_price" validate:"required,gt=0"`
	Notes      string  `json:"notes,omitempty"`
}

type CreateReturnInput struct {
	SaleID    int64  `json:"sale_id" validate:"required"`
	ProductID int64  `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reason    string `json:"reason,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type SummaryRange struct {
	StartDate time.Time
	EndDate   time.Time
}
