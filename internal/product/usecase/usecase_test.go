package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/product/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type fakeRepo struct {
	findAllCalls int
	products     []model.Product
	findAllErr   error

	created *model.Product
	updated *model.Product
	delErr  error
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	f.findAllCalls++
	return f.products, f.findAllErr
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	return f.created, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	return f.updated, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error { return f.delErr }

func validCreateInput() *dto.CreateProductInput {
	return &dto.CreateProductInput{
		Name:        "Widget",
		Price:       9.99,
		Cost:        4.50,
		Stock:       10,
		MinQuantity: 2,
		CategoryID:  1,
		SupplierID:  1,
	}
}

func TestListProducts_CachesAfterFirstFetch(t *testing.T) {
	repo := &fakeRepo{products: []model.Product{{ID: 1, Name: "Widget"}}}
	c := cache.NewList[model.Product]()
	uc := NewProductUseCase(repo, c, zap.NewNop())

	first, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	second, err := uc.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.findAllCalls)
}

func TestListProducts_ErrorDoesNotPoisonCache(t *testing.T) {
	repo := &fakeRepo{findAllErr: errors.New("boom")}
	c := cache.NewList[model.Product]()
	uc := NewProductUseCase(repo, c, zap.NewNop())

	_, err := uc.ListProducts(context.Background())
	require.Error(t, err)
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestCreateProduct_InvalidInputReturnsFieldErrors(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewProductUseCase(repo, cache.NewList[model.Product](), zap.NewNop())

	input := validCreateInput()
	input.Name = ""
	input.Price = 0

	_, err := uc.CreateProduct(context.Background(), input)
	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Contains(t, errs, "price")
	assert.Equal(t, 0, repo.findAllCalls)
}

func TestCreateProduct_InvalidatesListCache(t *testing.T) {
	repo := &fakeRepo{created: &model.Product{ID: 5, Name: "Widget"}}
	c := cache.NewList[model.Product]()
	c.Put([]model.Product{{ID: 1}})
	uc := NewProductUseCase(repo, c, zap.NewNop())

	_, err := uc.CreateProduct(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, ok := c.Get()
	assert.False(t, ok)
}

func TestDeleteProduct_InvalidatesListCache(t *testing.T) {
	repo := &fakeRepo{}
	c := cache.NewList[model.Product]()
	c.Put([]model.Product{{ID: 1}})
	uc := NewProductUseCase(repo, c, zap.NewNop())

	require.NoError(t, uc.DeleteProduct(context.Background(), 1))
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestDeleteProduct_ErrorKeepsCache(t *testing.T) {
	repo := &fakeRepo{delErr: errors.New("forbidden")}
	c := cache.NewList[model.Product]()
	c.Put([]model.Product{{ID: 1}})
	uc := NewProductUseCase(repo, c, zap.NewNop())

	require.Error(t, uc.DeleteProduct(context.Background(), 1))
	_, ok := c.Get()
	assert.True(t, ok)
}
