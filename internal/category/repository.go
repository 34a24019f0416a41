package category

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/category/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	Update(ctx context.Context, id int64, input *dto.UpdateCategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}
