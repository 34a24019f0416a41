package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/supplier"
	"github.com/zhengyang6751/inventory-management-system/internal/supplier/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type supplierUseCase struct {
	repo   supplier.Repository
	cache  *cache.List[model.Supplier]
	logger *zap.Logger
}

func NewSupplierUseCase(repo supplier.Repository, c *cache.List[model.Supplier], log *zap.Logger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	if suppliers, ok := uc.cache.Get(); ok {
		return suppliers, nil
	}

	suppliers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(suppliers)
	return suppliers, nil
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	sup, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("supplier created", zap.Int64("id", sup.ID), zap.String("name", sup.Name))
	return sup, nil
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, id int64, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	sup, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("supplier updated", zap.Int64("id", id))
	return sup, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate()
	uc.logger.Info("supplier deleted", zap.Int64("id", id))
	return nil
}
