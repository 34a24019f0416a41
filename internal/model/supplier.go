package model

import "time"

type Supplier struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ContactName *string    `json:"contact_name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Address     *string    `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
