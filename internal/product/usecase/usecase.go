package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/product"
	"github.com/zhengyang6751/inventory-management-system/internal/product/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.List[model.Product]
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, c *cache.List[model.Product], log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if products, ok := uc.cache.Get(); ok {
		return products, nil
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(products)
	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	p, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("product created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	p, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("product updated", zap.Int64("id", id))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate()
	uc.logger.Info("product deleted", zap.Int64("id", id))
	return nil
}
