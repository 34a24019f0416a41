package product

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/product/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	Update(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
