package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/customer"
	customerdto "github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale"
	saledto "github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
)

type fakeCustomerUC struct {
	createCalls  int
	lastInput    *customerdto.CreateCustomerInput
	createResult *model.Customer
	createErr    error
}

func (f *fakeCustomerUC) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerUC) CreateCustomer(ctx context.Context, input *customerdto.CreateCustomerInput) (*model.Customer, error) {
	f.createCalls++
	f.lastInput = input
	return f.createResult, f.createErr
}

type fakeSaleUC struct {
	createCalls  int
	lastInput    *saledto.CreateSaleInput
	createResult *model.Sale
	createErr    error
}

func (f *fakeSaleUC) ListSales(ctx context.Context) ([]model.Sale, error) { return nil, nil }

func (f *fakeSaleUC) CreateSale(ctx context.Context, input *saledto.CreateSaleInput) (*model.Sale, error) {
	f.createCalls++
	f.lastInput = input
	return f.createResult, f.createErr
}

func (f *fakeSaleUC) SalesSummary(ctx context.Context, r saledto.SummaryRange) (*model.SalesSummary, error) {
	return nil, nil
}

func (f *fakeSaleUC) ListReturns(ctx context.Context) ([]model.Return, error) { return nil, nil }

func (f *fakeSaleUC) CreateReturn(ctx context.Context, input *saledto.CreateReturnInput) (*model.Return, error) {
	return nil, nil
}

var _ customer.UseCase = (*fakeCustomerUC)(nil)
var _ sale.UseCase = (*fakeSaleUC)(nil)

func strPtr(s string) *string { return &s }

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Widget", Price: 9.99, Stock: 5},
		{ID: 2, Name: "Gadget", Price: 25.00, Stock: 0},
	}
}

func testCustomers() []model.Customer {
	return []model.Customer{
		{ID: 7, FullName: "Alice Johnson", Email: strPtr("alice@example.com")},
		{ID: 8, FullName: "Bob Smith", Email: strPtr("bob@example.com")},
		{ID: 9, FullName: "Carol Jones"},
	}
}

func newWorkflow(custUC customer.UseCase, saleUC sale.UseCase, hooks workflow.Hooks) *workflow.Workflow {
	return workflow.New(testProducts(), testCustomers(), custUC, saleUC, hooks, zap.NewNop())
}

func TestSuggestions_EmptySearchShowsNothing(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	assert.Equal(t, workflow.StateIdle, wf.State())
	assert.Nil(t, wf.Suggestions())

	wf.SetSearch("al")
	wf.SetSearch("")
	assert.Equal(t, workflow.StateIdle, wf.State())
	assert.Nil(t, wf.Suggestions())
}

func TestSuggestions_MatchesNameAndEmail(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.SetSearch("jo")
	assert.Equal(t, workflow.StateSearching, wf.State())

	got := wf.Suggestions()
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Johnson", got[0].FullName)
	assert.Equal(t, "Carol Jones", got[1].FullName)

	// Case-insensitive, and email text counts too.
	wf.SetSearch("BOB@")
	got = wf.Suggestions()
	require.Len(t, got, 1)
	assert.Equal(t, int64(8), got[0].ID)
}

func TestSelect_ResolvesCustomerAndFillsSearch(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.SetSearch("ali")
	require.True(t, wf.Select(7))

	assert.Equal(t, workflow.StateSelected, wf.State())
	assert.Equal(t, "Alice Johnson", wf.Search())

	resolved, ok := wf.Resolved()
	require.True(t, ok)
	assert.Equal(t, int64(7), resolved.ID)
}

func TestSelect_UnknownIDIsRejected(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.SetSearch("x")
	assert.False(t, wf.Select(999))
	_, ok := wf.Resolved()
	assert.False(t, ok)
}

func TestCancelCreate_ReturnsToSearchState(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.SetSearch("al")
	wf.StartCreate()
	assert.Equal(t, workflow.StateCreating, wf.State())

	// Typing is ignored while the form is open.
	wf.SetSearch("ignored")
	assert.Equal(t, "al", wf.Search())

	wf.CancelCreate()
	assert.Equal(t, workflow.StateSearching, wf.State())
	assert.Equal(t, "al", wf.Search())
}

func TestCancelCreate_EmptySearchGoesIdle(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.StartCreate()
	wf.CancelCreate()
	assert.Equal(t, workflow.StateIdle, wf.State())
}

func TestCreateCustomer_ValidationKeepsFormOpen(t *testing.T) {
	custUC := &fakeCustomerUC{}
	wf := newWorkflow(custUC, &fakeSaleUC{}, workflow.Hooks{})
	wf.StartCreate()

	res := wf.CreateCustomer(context.Background(), &customerdto.CreateCustomerInput{
		Email: "not-an-email",
	})

	require.NotNil(t, res.FieldErrors)
	assert.Contains(t, res.FieldErrors, "full_name")
	assert.Contains(t, res.FieldErrors, "email")
	assert.Equal(t, 0, custUC.createCalls)
	assert.Equal(t, workflow.StateCreating, wf.State())
}

func TestCreateCustomer_SuccessSelectsAndAppends(t *testing.T) {
	created := &model.Customer{ID: 42, FullName: "Dana West", Email: strPtr("dana@example.com")}
	custUC := &fakeCustomerUC{createResult: created}
	var hookRuns int
	wf := newWorkflow(custUC, &fakeSaleUC{}, workflow.Hooks{CustomerCreated: func() { hookRuns++ }})
	wf.StartCreate()

	res := wf.CreateCustomer(context.Background(), &customerdto.CreateCustomerInput{
		FullName: "Dana West",
		Email:    "dana@example.com",
	})

	require.NotNil(t, res.Customer)
	assert.Equal(t, workflow.NoticeSuccess, res.Notice.Level)
	assert.Equal(t, workflow.StateSelected, wf.State())
	assert.Equal(t, 1, hookRuns)

	resolved, ok := wf.Resolved()
	require.True(t, ok)
	assert.Equal(t, int64(42), resolved.ID)
	assert.Equal(t, "Dana West", wf.Search())

	// The new customer is searchable without a refresh.
	wf.SetSearch("dana")
	require.Len(t, wf.Suggestions(), 1)
}

func TestCreateCustomer_EmailConflictReopensSearch(t *testing.T) {
	custUC := &fakeCustomerUC{createErr: &api.Error{
		Status: 400,
		Detail: "A customer with this email already exists",
	}}
	wf := newWorkflow(custUC, &fakeSaleUC{}, workflow.Hooks{})
	wf.StartCreate()

	res := wf.CreateCustomer(context.Background(), &customerdto.CreateCustomerInput{
		FullName: "Alice Clone",
		Email:    "alice@example.com",
	})

	assert.Nil(t, res.Customer)
	assert.Equal(t, workflow.NoticeWarning, res.Notice.Level)
	assert.Equal(t, "Customer Already Exists", res.Notice.Title)

	// The resolver returns to searching with the attempted email so the
	// existing entry can be found, and no duplicate was added locally.
	assert.Equal(t, workflow.StateSearching, wf.State())
	assert.Equal(t, "alice@example.com", wf.Search())
	require.Len(t, wf.Suggestions(), 1)
	assert.Equal(t, int64(7), wf.Suggestions()[0].ID)
}

func TestCreateCustomer_OtherErrorKeepsFormOpen(t *testing.T) {
	custUC := &fakeCustomerUC{createErr: errors.New("connection refused")}
	wf := newWorkflow(custUC, &fakeSaleUC{}, workflow.Hooks{})
	wf.StartCreate()

	res := wf.CreateCustomer(context.Background(), &customerdto.CreateCustomerInput{
		FullName: "Dana West",
	})

	assert.Equal(t, workflow.NoticeError, res.Notice.Level)
	assert.Equal(t, workflow.StateCreating, wf.State())
}

func TestSelectProduct_ResetsPriceKeepsQuantity(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	wf.SetQuantity(3)
	require.True(t, wf.SelectProduct(1))
	assert.Equal(t, 9.99, wf.Draft().UnitPrice)
	assert.Equal(t, 3, wf.Draft().Quantity)

	// Manual price edits survive until another product is chosen.
	wf.SetUnitPrice(8.50)
	require.True(t, wf.SelectProduct(2))
	assert.Equal(t, 25.00, wf.Draft().UnitPrice)
	assert.Equal(t, 3, wf.Draft().Quantity)
}

func TestValidate_QuantityBounds(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})
	wf.SelectProduct(1) // stock 5

	wf.SetQuantity(0)
	errs := wf.Validate()
	assert.Equal(t, "Quantity is required", errs["quantity"])

	wf.SetQuantity(-1)
	errs = wf.Validate()
	assert.Equal(t, "Quantity must be at least 1", errs["quantity"])

	wf.SetQuantity(6)
	errs = wf.Validate()
	assert.Equal(t, "Maximum quantity is 5", errs["quantity"])

	wf.SetQuantity(5)
	errs = wf.Validate()
	assert.NotContains(t, errs, "quantity")
}

func TestValidate_ProductAndPrice(t *testing.T) {
	wf := newWorkflow(&fakeCustomerUC{}, &fakeSaleUC{}, workflow.Hooks{})

	errs := wf.Validate()
	assert.Equal(t, "Product is required", errs["product_id"])
	assert.Equal(t, "Unit price must be greater than 0", errs["unit_price"])

	wf.SelectProduct(1)
	wf.SetQuantity(2)
	assert.Nil(t, wf.Validate())
}

func TestSubmit_NoCustomerSendsNothing(t *testing.T) {
	saleUC := &fakeSaleUC{}
	wf := newWorkflow(&fakeCustomerUC{}, saleUC, workflow.Hooks{})
	wf.SelectProduct(1)
	wf.SetQuantity(2)

	res := wf.Submit(context.Background())

	assert.Equal(t, workflow.NoticeError, res.Notice.Level)
	assert.Equal(t, "Please select a customer", res.Notice.Message)
	assert.Equal(t, 0, saleUC.createCalls)
	assert.False(t, wf.Closed())
}

func TestSubmit_InvalidDraftSendsNothing(t *testing.T) {
	saleUC := &fakeSaleUC{}
	wf := newWorkflow(&fakeCustomerUC{}, saleUC, workflow.Hooks{})
	wf.Select(7)

	res := wf.Submit(context.Background())

	assert.NotNil(t, res.FieldErrors)
	assert.Equal(t, 0, saleUC.createCalls)
}

func TestSubmit_SuccessSendsOneRequestAndCloses(t *testing.T) {
	saleUC := &fakeSaleUC{createResult: &model.Sale{ID: 100}}
	var hookRuns int
	wf := newWorkflow(&fakeCustomerUC{}, saleUC, workflow.Hooks{SaleCreated: func() { hookRuns++ }})

	wf.SelectProduct(1)
	wf.Select(7)
	wf.SetQuantity(2)
	wf.SetNotes("walk-in")

	res := wf.Submit(context.Background())

	assert.True(t, res.Closed)
	assert.True(t, wf.Closed())
	assert.Equal(t, workflow.NoticeSuccess, res.Notice.Level)
	assert.Equal(t, 1, hookRuns)
	require.Equal(t, 1, saleUC.createCalls)
	assert.Equal(t, &saledto.CreateSaleInput{
		ProductID:  1,
		CustomerID: 7,
		Quantity:   2,
		UnitPrice:  9.99,
		Notes:      "walk-in",
	}, saleUC.lastInput)
}

func TestSubmit_FailureKeepsDraftIntact(t *testing.T) {
	saleUC := &fakeSaleUC{createErr: errors.New("service unavailable")}
	wf := newWorkflow(&fakeCustomerUC{}, saleUC, workflow.Hooks{})

	wf.SelectProduct(1)
	wf.Select(7)
	wf.SetQuantity(2)

	res := wf.Submit(context.Background())

	assert.Equal(t, workflow.NoticeError, res.Notice.Level)
	assert.False(t, res.Closed)
	assert.False(t, wf.Closed())

	draft := wf.Draft()
	assert.Equal(t, int64(1), draft.ProductID)
	assert.Equal(t, 2, draft.Quantity)
	resolved, ok := wf.Resolved()
	require.True(t, ok)
	assert.Equal(t, int64(7), resolved.ID)
}

func TestClosedWorkflowDropsLateResults(t *testing.T) {
	created := &model.Customer{ID: 42, FullName: "Dana West"}
	custUC := &fakeCustomerUC{createResult: created}
	saleUC := &fakeSaleUC{createResult: &model.Sale{ID: 100}}
	var custHooks, saleHooks int
	wf := newWorkflow(custUC, saleUC, workflow.Hooks{
		CustomerCreated: func() { custHooks++ },
		SaleCreated:     func() { saleHooks++ },
	})

	wf.SelectProduct(1)
	wf.Select(7)
	wf.SetQuantity(1)
	wf.StartCreate()
	wf.Close()

	custRes := wf.CreateCustomer(context.Background(), &customerdto.CreateCustomerInput{FullName: "Dana West"})
	assert.Equal(t, workflow.CustomerResult{}, custRes)
	assert.Equal(t, 0, custHooks)

	saleRes := wf.Submit(context.Background())
	assert.Equal(t, workflow.SubmitResult{}, saleRes)
	assert.Equal(t, 0, saleHooks)
}
