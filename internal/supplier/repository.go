package supplier

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/supplier/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Supplier, error)
	Create(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	Update(ctx context.Context, id int64, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	Delete(ctx context.Context, id int64) error
}
