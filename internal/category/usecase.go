package category

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/category/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
