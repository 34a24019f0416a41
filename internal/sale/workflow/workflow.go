// Package workflow implements the sale-creation workflow: a draft sale
// over a product snapshot, a search-or-create customer resolver, and
// validated submission. It holds no terminal state; the TUI binds to it
// and tests drive it directly.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/customer"
	customerdto "github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale"
	saledto "github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

// State is the customer resolver's position in the
// search-or-create flow.
type State int

const (
	// StateIdle: no search text, suggestion list hidden.
	StateIdle State = iota
	// StateSearching: non-empty search text, suggestions visible.
	StateSearching
	// StateSelected: a customer is resolved.
	StateSelected
	// StateCreating: the inline new-customer form is open.
	StateCreating
)

type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is a user-visible outcome of a workflow operation. The zero
// value means nothing to show.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

func (n Notice) IsZero() bool { return n.Title == "" && n.Message == "" }

// DraftSale is the transient sale being assembled. It is discarded on
// cancel or successful submit; nothing is persisted client-side.
type DraftSale struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
	Notes     string
}

// Hooks let the owning page keep its lists consistent. CustomerCreated
// runs after a successful inline creation, SaleCreated after a
// successful submit.
type Hooks struct {
	CustomerCreated func()
	SaleCreated     func()
}

// CustomerResult is the outcome of an inline customer creation.
type CustomerResult struct {
	Customer    *model.Customer
	FieldErrors validate.FieldErrors
	Notice      Notice
}

// SubmitResult is the outcome of a sale submission.
type SubmitResult struct {
	Sale        *model.Sale
	FieldErrors validate.FieldErrors
	Notice      Notice
	Closed      bool
}

// Workflow is one open sale-creation interaction. Methods are safe for
// the response-delivery goroutine and the UI loop to interleave; after
// Close, late responses no longer change state.
type Workflow struct {
	customerUC customer.UseCase
	saleUC     sale.UseCase
	hooks      Hooks
	logger     *zap.Logger

	mu        sync.Mutex
	products  []model.Product
	customers []model.Customer
	state     State
	search    string
	resolved  *model.Customer
	draft     DraftSale
	closed    bool
}

func New(products []model.Product, customers []model.Customer, customerUC customer.UseCase, saleUC sale.UseCase, hooks Hooks, log *zap.Logger) *Workflow {
	return &Workflow{
		customerUC: customerUC,
		saleUC:     saleUC,
		hooks:      hooks,
		logger:     log,
		products:   products,
		customers:  customers,
		state:      StateIdle,
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) Search() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.search
}

// SetSearch records the search box content. Any text puts the resolver
// in Searching; clearing it returns to Idle. Ignored while the
// new-customer form is open.
func (w *Workflow) SetSearch(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateCreating {
		return
	}
	w.search = s
	w.state = stateForSearch(s)
}

// Suggestions filters the customer list by case-insensitive substring
// match on full name or email. An empty search yields no suggestions,
// not all customers.
func (w *Workflow) Suggestions() []model.Customer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.search == "" || w.state != StateSearching {
		return nil
	}
	var out []model.Customer
	for _, c := range w.customers {
		if c.Matches(w.search) {
			out = append(out, c)
		}
	}
	return out
}

// Select resolves the customer with the given id. The search box takes
// the customer's display name regardless of prior partial text.
func (w *Workflow) Select(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.customers {
		if w.customers[i].ID == id {
			c := w.customers[i]
			w.resolved = &c
			w.search = c.FullName
			w.state = StateSelected
			return true
		}
	}
	return false
}

// Resolved returns the customer usable as the sale's foreign key, if
// one has been resolved by selection or creation.
func (w *Workflow) Resolved() (model.Customer, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.resolved == nil {
		return model.Customer{}, false
	}
	return *w.resolved, true
}

// StartCreate opens the inline new-customer form. Allowed from any
// state.
func (w *Workflow) StartCreate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateCreating
}

// CancelCreate closes the form and returns to searching over whatever
// text is in the box (Idle when it is empty).
func (w *Workflow) CancelCreate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateCreating {
		return
	}
	w.state = stateForSearch(w.search)
}

// CreateCustomer creates a customer inline and, on success, makes it
// the resolved selection. An email collision is not a hard failure: the
// resolver reopens the suggestion list pre-filled with the attempted
// email so the user can find the existing entry. Any other failure
// keeps the form open for retry.
func (w *Workflow) CreateCustomer(ctx context.Context, input *customerdto.CreateCustomerInput) CustomerResult {
	if errs := validate.Struct(input); errs != nil {
		return CustomerResult{FieldErrors: errs}
	}

	cust, err := w.customerUC.CreateCustomer(ctx, input)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		// The owning view is gone; drop the result.
		return CustomerResult{}
	}

	if err != nil {
		if api.IsEmailConflict(err) {
			w.search = input.Email
			w.state = stateForSearch(w.search)
			return CustomerResult{Notice: Notice{
				Level:   NoticeWarning,
				Title:   "Customer Already Exists",
				Message: "A customer with this email already exists. Please search for them using their name or email.",
			}}
		}
		w.logger.Error("inline customer creation failed", zap.Error(err))
		return CustomerResult{Notice: Notice{
			Level:   NoticeError,
			Title:   "Error",
			Message: "Failed to create customer. Please try again.",
		}}
	}

	w.customers = append(w.customers, *cust)
	w.resolved = cust
	w.search = cust.FullName
	w.state = StateSelected
	if w.hooks.CustomerCreated != nil {
		w.hooks.CustomerCreated()
	}
	return CustomerResult{
		Customer: cust,
		Notice: Notice{
			Level:   NoticeSuccess,
			Title:   "Success",
			Message: "Customer created successfully",
		},
	}
}

// SelectProduct records the chosen product and resets the unit price to
// that product's price. An already-entered quantity is deliberately
// left alone; submit-time validation catches a quantity that no longer
// fits the new product's stock.
func (w *Workflow) SelectProduct(id int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.products {
		if p.ID == id {
			w.draft.ProductID = id
			w.draft.UnitPrice = p.Price
			return true
		}
	}
	return false
}

func (w *Workflow) SetQuantity(q int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Quantity = q
}

func (w *Workflow) SetUnitPrice(p float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.UnitPrice = p
}

func (w *Workflow) SetNotes(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Notes = s
}

func (w *Workflow) Draft() DraftSale {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Products returns the product snapshot the workflow was opened with.
func (w *Workflow) Products() []model.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.products
}

// SelectedProduct returns the draft's product, if one is chosen.
func (w *Workflow) SelectedProduct() (model.Product, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedProductLocked()
}

func (w *Workflow) selectedProductLocked() (model.Product, bool) {
	for _, p := range w.products {
		if p.ID == w.draft.ProductID {
			return p, true
		}
	}
	return model.Product{}, false
}

// Validate checks the draft against the field constraints and returns
// one message per invalid field. The stock bound uses the product
// snapshot; the service re-checks authoritatively at submit.
func (w *Workflow) Validate() validate.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateLocked()
}

func (w *Workflow) validateLocked() validate.FieldErrors {
	errs := validate.FieldErrors{}

	product, hasProduct := w.selectedProductLocked()
	if w.draft.ProductID == 0 || !hasProduct {
		errs["product_id"] = "Product is required"
	}

	switch {
	case w.draft.Quantity == 0:
		errs["quantity"] = "Quantity is required"
	case w.draft.Quantity < 1:
		errs["quantity"] = "Quantity must be at least 1"
	case hasProduct && w.draft.Quantity > product.Stock:
		errs["quantity"] = fmt.Sprintf("Maximum quantity is %d", product.Stock)
	}

	if w.draft.UnitPrice <= 0 {
		errs["unit_price"] = "Unit price must be greater than 0"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates the draft and, when valid and a customer is
// resolved, sends exactly one sale-creation request. Success closes the
// workflow and runs the sale refresh hook; failure leaves every entered
// value intact so resubmitting needs no re-entry.
func (w *Workflow) Submit(ctx context.Context) SubmitResult {
	w.mu.Lock()
	if errs := w.validateLocked(); errs != nil {
		w.mu.Unlock()
		return SubmitResult{FieldErrors: errs}
	}
	if w.resolved == nil {
		w.mu.Unlock()
		return SubmitResult{Notice: Notice{
			Level:   NoticeError,
			Title:   "Error",
			Message: "Please select a customer",
		}}
	}
	input := &saledto.CreateSaleInput{
		ProductID:  w.draft.ProductID,
		CustomerID: w.resolved.ID,
		Quantity:   w.draft.Quantity,
		UnitPrice:  w.draft.UnitPrice,
		Notes:      w.draft.Notes,
	}
	w.mu.Unlock()

	s, err := w.saleUC.CreateSale(ctx, input)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return SubmitResult{}
	}

	if err != nil {
		w.logger.Error("sale submission failed", zap.Error(err))
		return SubmitResult{Notice: Notice{
			Level:   NoticeError,
			Title:   "Error",
			Message: "Failed to create sale",
		}}
	}

	w.closed = true
	if w.hooks.SaleCreated != nil {
		w.hooks.SaleCreated()
	}
	return SubmitResult{
		Sale:   s,
		Closed: true,
		Notice: Notice{
			Level:   NoticeSuccess,
			Title:   "Success",
			Message: "Sale created successfully",
		},
	}
}

// Close dismisses the workflow. Responses that arrive afterwards are
// dropped.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

func (w *Workflow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func stateForSearch(s string) State {
	if s == "" {
		return StateIdle
	}
	return StateSearching
}
