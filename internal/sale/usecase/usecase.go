package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type saleUseCase struct {
	repo         sale.Repository
	cache        *cache.List[model.Sale]
	productCache cache.Invalidator
	logger       *zap.Logger
}

func NewSaleUseCase(repo sale.Repository, c *cache.List[model.Sale], productCache cache.Invalidator, log *zap.Logger) sale.UseCase {
	return &saleUseCase{
		repo:         repo,
		cache:        c,
		productCache: productCache,
		logger:       log,
	}
}

func (uc *saleUseCase) ListSales(ctx context.Context) ([]model.Sale, error) {
	if sales, ok := uc.cache.Get(); ok {
		return sales, nil
	}

	sales, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(sales)
	return sales, nil
}

func (uc *saleUseCase) CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	s, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	// Stock changed server-side.
	uc.productCache.Invalidate()

	uc.logger.Info("sale created",
		zap.Int64("id", s.ID),
		zap.Int64("product_id", s.ProductID),
		zap.Int64("customer_id", s.CustomerID),
		zap.Int("quantity", s.Quantity),
		zap.Float64("total_amount", s.TotalAmount),
	)
	return s, nil
}

func (uc *saleUseCase) SalesSummary(ctx context.Context, r dto.SummaryRange) (*model.SalesSummary, error) {
	return uc.repo.Summary(ctx, r)
}

func (uc *saleUseCase) ListReturns(ctx context.Context) ([]model.Return, error) {
	return uc.repo.FindReturns(ctx)
}

func (uc *saleUseCase) CreateReturn(ctx context.Context, input *dto.CreateReturnInput) (*model.Return, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	ret, err := uc.repo.CreateReturn(ctx, input)
	if err != nil {
		return nil, err
	}

	// Returned quantity goes back into stock.
	uc.productCache.Invalidate()

	uc.logger.Info("return created", zap.Int64("id", ret.ID), zap.Int64("sale_id", ret.SaleID))
	return ret, nil
}
