package dto

type CreateCustomerInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}
