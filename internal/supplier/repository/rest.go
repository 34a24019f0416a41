package repository

import (
	"context"
	"fmt"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/supplier/dto"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.client.Get(ctx, "/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.client.Post(ctx, "/suppliers", input, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.client.Put(ctx, fmt.Sprintf("/suppliers/%d", id), input, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}
