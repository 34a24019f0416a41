package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/auth"
	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/category"
	"github.com/zhengyang6751/inventory-management-system/internal/customer"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/product"
	"github.com/zhengyang6751/inventory-management-system/internal/sale"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
	"github.com/zhengyang6751/inventory-management-system/internal/session"
	"github.com/zhengyang6751/inventory-management-system/internal/supplier"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewProducts
	viewProductForm
	viewCategories
	viewCategoryForm
	viewSuppliers
	viewSupplierForm
	viewSales
	viewSaleForm
	viewReturns
	viewReturnForm
)

// App is the bubbletea model for the whole terminal front end. The
// session store acts as the route guard: without an authenticated
// session only the login and register views are reachable.
type App struct {
	authUC     auth.UseCase
	productUC  product.UseCase
	categoryUC category.UseCase
	supplierUC supplier.UseCase
	customerUC customer.UseCase
	saleUC     sale.UseCase
	sess       *session.Store
	caches     []cache.Invalidator
	logger     *zap.Logger

	view    view
	width   int
	loading bool
	notice  workflow.Notice

	// generic form state (login, register, entity forms)
	inputs     []textinput.Model
	focusIndex int
	fieldErrs  validate.FieldErrors
	editingID  int64

	// list state
	cursor       int
	productList  []model.Product
	categoryList []model.Category
	supplierList []model.Supplier
	saleList     []model.Sale
	returnList   []model.Return
	summary      *model.SalesSummary

	// sale workflow state
	wf           *workflow.Workflow
	wfSection    int
	wfProductIdx int
	wfSuggestIdx int
	wfFieldErrs  validate.FieldErrors
	searchInput  textinput.Model
	qtyInput     textinput.Model
	priceInput   textinput.Model
	notesInput   textinput.Model
	custInputs   []textinput.Model
}

func NewApp(
	authUC auth.UseCase,
	productUC product.UseCase,
	categoryUC category.UseCase,
	supplierUC supplier.UseCase,
	customerUC customer.UseCase,
	saleUC sale.UseCase,
	sess *session.Store,
	caches []cache.Invalidator,
	log *zap.Logger,
) *App {
	a := &App{
		authUC:     authUC,
		productUC:  productUC,
		categoryUC: categoryUC,
		supplierUC: supplierUC,
		customerUC: customerUC,
		saleUC:     saleUC,
		sess:       sess,
		caches:     caches,
		logger:     log,
	}
	if sess.Authenticated() {
		a.view = viewProducts
	} else {
		a.view = viewLogin
		a.initLoginForm()
	}
	return a
}

func (a *App) Init() tea.Cmd {
	if a.view == viewProducts {
		a.loading = true
		return a.loadProducts()
	}
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case errMsg:
		a.loading = false
		a.notice = workflow.Notice{Level: workflow.NoticeError, Title: "Error", Message: msg.err.Error()}
		return a, nil

	case noticeMsg:
		a.loading = false
		a.notice = msg.notice
		return a, nil

	case fieldErrsMsg:
		a.loading = false
		if a.view == viewSaleForm {
			a.wfFieldErrs = msg.errs
		} else {
			a.fieldErrs = msg.errs
		}
		return a, nil

	case loggedInMsg:
		a.loading = false
		a.notice = workflow.Notice{Level: workflow.NoticeSuccess, Title: "Success", Message: "Logged in as " + msg.user.FullName}
		a.view = viewProducts
		a.loading = true
		return a, a.loadProducts()

	case loggedOutMsg:
		a.loading = false
		a.resetLists()
		a.view = viewLogin
		a.initLoginForm()
		a.notice = workflow.Notice{Level: workflow.NoticeSuccess, Title: "Success", Message: "Logged out successfully"}
		return a, textinput.Blink

	case productsLoadedMsg:
		a.loading = false
		a.productList = msg.products
		a.clampCursor(len(a.productList))
		return a, nil

	case categoriesLoadedMsg:
		a.loading = false
		a.categoryList = msg.categories
		a.clampCursor(len(a.categoryList))
		return a, nil

	case suppliersLoadedMsg:
		a.loading = false
		a.supplierList = msg.suppliers
		a.clampCursor(len(a.supplierList))
		return a, nil

	case salesLoadedMsg:
		a.loading = false
		a.saleList = msg.sales
		a.clampCursor(len(a.saleList))
		return a, nil

	case returnsLoadedMsg:
		a.loading = false
		a.returnList = msg.returns
		a.clampCursor(len(a.returnList))
		return a, nil

	case summaryLoadedMsg:
		a.summary = msg.summary
		return a, nil

	case entitySavedMsg:
		a.loading = false
		a.notice = msg.notice
		return a, a.returnToList()

	case saleDepsLoadedMsg:
		return a, a.openSaleWorkflow(msg)

	case customerResultMsg:
		return a, a.applyCustomerResult(msg.result)

	case submitResultMsg:
		return a, a.applySubmitResult(msg.result)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateFocusedInputs(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.view {
	case viewLogin, viewRegister:
		return a, a.updateAuth(msg)
	case viewProducts, viewCategories, viewSuppliers, viewSales, viewReturns:
		return a.updateList(msg)
	case viewProductForm, viewCategoryForm, viewSupplierForm, viewReturnForm:
		return a, a.updateEntityForm(msg)
	case viewSaleForm:
		return a, a.updateSaleForm(msg)
	}
	return a, nil
}

func (a *App) View() string {
	var b strings.Builder

	switch a.view {
	case viewLogin, viewRegister:
		b.WriteString(a.viewAuth())
	default:
		b.WriteString(a.viewTabs())
		b.WriteString("\n")
		switch a.view {
		case viewProducts:
			b.WriteString(a.viewProducts())
		case viewProductForm:
			b.WriteString(a.viewProductForm())
		case viewCategories:
			b.WriteString(a.viewCategories())
		case viewCategoryForm:
			b.WriteString(a.viewCategoryForm())
		case viewSuppliers:
			b.WriteString(a.viewSuppliers())
		case viewSupplierForm:
			b.WriteString(a.viewSupplierForm())
		case viewSales:
			b.WriteString(a.viewSales())
		case viewSaleForm:
			b.WriteString(a.viewSaleForm())
		case viewReturns:
			b.WriteString(a.viewReturns())
		case viewReturnForm:
			b.WriteString(a.viewReturnForm())
		}
	}

	if !a.notice.IsZero() {
		b.WriteString("\n" + a.renderNotice(a.notice))
	}
	return b.String()
}

func (a *App) viewTabs() string {
	user := ""
	if u, ok := a.authUC.CurrentUser(); ok {
		user = helpStyle.Render("  " + u.FullName)
	}

	tabs := []struct {
		label  string
		active bool
	}{
		{"1 Products", a.view == viewProducts || a.view == viewProductForm},
		{"2 Categories", a.view == viewCategories || a.view == viewCategoryForm},
		{"3 Suppliers", a.view == viewSuppliers || a.view == viewSupplierForm},
		{"4 Sales", a.view == viewSales || a.view == viewSaleForm || a.view == viewReturns || a.view == viewReturnForm},
	}

	var b strings.Builder
	for _, t := range tabs {
		if t.active {
			b.WriteString(activeTabStyle.Render(t.label))
		} else {
			b.WriteString(tabStyle.Render(t.label))
		}
	}
	b.WriteString(user)
	return b.String()
}

func (a *App) renderNotice(n workflow.Notice) string {
	text := " " + n.Title + ": " + n.Message + " "
	switch n.Level {
	case workflow.NoticeSuccess:
		return successStyle.Render(text)
	case workflow.NoticeWarning:
		return warningStyle.Render(text)
	default:
		return errorStyle.Render(text)
	}
}

// updateFocusedInputs forwards non-key messages (cursor blink) to
// whichever inputs are live.
func (a *App) updateFocusedInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range a.inputs {
		var cmd tea.Cmd
		a.inputs[i], cmd = a.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.view == viewSaleForm {
		cmds = append(cmds, a.updateWorkflowInputs(msg))
	}
	return tea.Batch(cmds...)
}

func (a *App) resetLists() {
	a.productList = nil
	a.categoryList = nil
	a.supplierList = nil
	a.saleList = nil
	a.returnList = nil
	a.summary = nil
	a.cursor = 0
}

func (a *App) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) returnToList() tea.Cmd {
	a.inputs = nil
	a.fieldErrs = nil
	a.editingID = 0
	a.loading = true
	switch a.view {
	case viewProductForm:
		a.view = viewProducts
		return a.loadProducts()
	case viewCategoryForm:
		a.view = viewCategories
		return a.loadCategories()
	case viewSupplierForm:
		a.view = viewSuppliers
		return a.loadSuppliers()
	case viewSaleForm:
		a.view = viewSales
		return tea.Batch(a.loadSales(), a.loadSummary())
	case viewReturnForm:
		a.view = viewReturns
		return a.loadReturns()
	}
	a.loading = false
	return nil
}
