package repository

import (
	"context"
	"fmt"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/category/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.client.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	var category model.Category
	if err := r.client.Post(ctx, "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, input *dto.UpdateCategoryInput) (*model.Category, error) {
	var category model.Category
	if err := r.client.Put(ctx, fmt.Sprintf("/categories/%d", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
