package dto

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
