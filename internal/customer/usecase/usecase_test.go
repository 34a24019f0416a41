package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type fakeRepo struct {
	findAllCalls int
	customers    []model.Customer

	createCalls int
	created     *model.Customer
	createErr   error
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	f.findAllCalls++
	return f.customers, nil
}

func (f *fakeRepo) Create(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	f.createCalls++
	return f.created, f.createErr
}

func TestListCustomers_CachesAfterFirstFetch(t *testing.T) {
	repo := &fakeRepo{customers: []model.Customer{{ID: 1, FullName: "Alice"}}}
	c := cache.NewList[model.Customer]()
	uc := NewCustomerUseCase(repo, c, zap.NewNop())

	_, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	_, err = uc.ListCustomers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.findAllCalls)
}

func TestCreateCustomer_AppendsToCacheWithoutRefetch(t *testing.T) {
	created := &model.Customer{ID: 2, FullName: "Bob"}
	repo := &fakeRepo{customers: []model.Customer{{ID: 1, FullName: "Alice"}}, created: created}
	c := cache.NewList[model.Customer]()
	uc := NewCustomerUseCase(repo, c, zap.NewNop())

	_, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)

	got, err := uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{FullName: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// The cached list grew in place; no second FindAll happened.
	list, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[1].FullName)
	assert.Equal(t, 1, repo.findAllCalls)
}

func TestCreateCustomer_RequiresFullName(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCustomerUseCase(repo, cache.NewList[model.Customer](), zap.NewNop())

	_, err := uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{Email: "a@b.co"})
	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Full Name is required", errs["full_name"])
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateCustomer_ErrorLeavesCacheAlone(t *testing.T) {
	repo := &fakeRepo{customers: []model.Customer{{ID: 1}}, createErr: errors.New("boom")}
	c := cache.NewList[model.Customer]()
	uc := NewCustomerUseCase(repo, c, zap.NewNop())

	_, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)

	_, err = uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{FullName: "Bob"})
	require.Error(t, err)

	list, ok := c.Get()
	require.True(t, ok)
	assert.Len(t, list, 1)
}
