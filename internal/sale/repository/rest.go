package repository

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.client.Get(ctx, "/sales", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	var sale model.Sale
	if err := r.client.Post(ctx, "/sales", input, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *RESTRepository) Summary(ctx context.Context, rng dto.SummaryRange) (*model.SalesSummary, error) {
	query := map[string]string{
		"start_date": rng.StartDate.Format("2006-01-02"),
		"end_date":   rng.EndDate.Format("2006-01-02"),
	}
	var summary model.SalesSummary
	if err := r.client.GetQuery(ctx, "/sales/summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *RESTRepository) FindReturns(ctx context.Context) ([]model.Return, error) {
	var returns []model.Return
	if err := r.client.Get(ctx, "/sales/returns", &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

func (r *RESTRepository) CreateReturn(ctx context.Context, input *dto.CreateReturnInput) (*model.Return, error) {
	var ret model.Return
	if err := r.client.Post(ctx, "/sales/returns", input, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
