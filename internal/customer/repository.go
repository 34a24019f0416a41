package customer

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
}
