package sale

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
)

type UseCase interface {
	ListSales(ctx context.Context) ([]model.Sale, error)

	// CreateSale submits the sale. On success both the sale list and
	// the product list caches are invalidated: the service adjusts
	// product stock as part of the sale.
	CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)

	SalesSummary(ctx context.Context, r dto.SummaryRange) (*model.SalesSummary, error)

	ListReturns(ctx context.Context) ([]model.Return, error)
	CreateReturn(ctx context.Context, input *dto.CreateReturnInput) (*model.Return, error)
}
