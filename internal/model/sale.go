package model

import "time"

type Sale struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	CustomerID  int64     `json:"customer_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalAmount float64   `json:"total_amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Product     *Product  `json:"product,omitempty"`  // Joined data
	Customer    *Customer `json:"customer,omitempty"` // Joined data
}

type Return struct {
	ID        int64     `json:"id"`
	SaleID    int64     `json:"sale_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    *string   `json:"reason"`
	Notes     *string   `json:"notes"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type SalesSummary struct {
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}
