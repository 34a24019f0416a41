package customer

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type UseCase interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)

	// CreateCustomer creates the customer and appends it to the cached
	// list, so subsequent searches see it without a full re-fetch.
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
}
