package repository

import (
	"context"
	"fmt"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/product/dto"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.client.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := r.client.Get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	var product model.Product
	if err := r.client.Post(ctx, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	var product model.Product
	if err := r.client.Put(ctx, fmt.Sprintf("/products/%d", id), input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/products/%d", id))
}
