package repository

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.client.Get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	var customer model.Customer
	if err := r.client.Post(ctx, "/customers", input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
