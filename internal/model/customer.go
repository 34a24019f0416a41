package model

import (
	"strings"
	"time"
)

type Customer struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"full_name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Matches reports whether the customer's full name or email contains
// query as a case-insensitive substring.
func (c Customer) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.FullName), q) {
		return true
	}
	if c.Email != nil && strings.Contains(strings.ToLower(*c.Email), q) {
		return true
	}
	return false
}
