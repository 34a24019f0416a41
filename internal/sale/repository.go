package sale

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Sale, error)
	Create(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
	Summary(ctx context.Context, r dto.SummaryRange) (*model.SalesSummary, error)
	FindReturns(ctx context.Context) ([]model.Return, error)
	CreateReturn(ctx context.Context, input *dto.CreateReturnInput) (*model.Return, error)
}
