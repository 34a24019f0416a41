package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/customer"
	"github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type customerUseCase struct {
	repo   customer.Repository
	cache  *cache.List[model.Customer]
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, c *cache.List[model.Customer], log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	if customers, ok := uc.cache.Get(); ok {
		return customers, nil
	}

	customers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(customers)
	return customers, nil
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	cust, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	// The server copy is authoritative; extend the cached list instead
	// of dropping it.
	uc.cache.Append(*cust)
	uc.logger.Info("customer created", zap.Int64("id", cust.ID), zap.String("full_name", cust.FullName))
	return cust, nil
}
