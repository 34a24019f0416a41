package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	categorydto "github.com/zhengyang6751/inventory-management-system/internal/category/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	productdto "github.com/zhengyang6751/inventory-management-system/internal/product/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
	supplierdto "github.com/zhengyang6751/inventory-management-system/internal/supplier/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

func successNotice(message string) workflow.Notice {
	return workflow.Notice{Level: workflow.NoticeSuccess, Title: "Success", Message: message}
}

var productFormLabels = []string{
	"Name:", "Description:", "SKU:", "Barcode:", "Price:", "Cost:",
	"Stock:", "Min Quantity:", "Category ID:", "Supplier ID:",
}

var productFormFields = []string{
	"name", "description", "sku", "barcode", "price", "cost",
	"stock", "min_quantity", "category_id", "supplier_id",
}

func (a *App) initProductForm(p *model.Product) {
	a.inputs = make([]textinput.Model, len(productFormLabels))
	for i := range a.inputs {
		a.inputs[i] = textinput.New()
	}
	a.inputs[0].Focus()
	a.focusIndex = 0
	a.fieldErrs = nil
	a.editingID = 0

	if p != nil {
		a.editingID = p.ID
		a.inputs[0].SetValue(p.Name)
		a.inputs[1].SetValue(p.Description)
		a.inputs[2].SetValue(p.SKU)
		a.inputs[3].SetValue(p.Barcode)
		a.inputs[4].SetValue(strconv.FormatFloat(p.Price, 'f', 2, 64))
		a.inputs[5].SetValue(strconv.FormatFloat(p.Cost, 'f', 2, 64))
		a.inputs[6].SetValue(strconv.Itoa(p.Stock))
		a.inputs[7].SetValue(strconv.Itoa(p.MinQuantity))
		a.inputs[8].SetValue(strconv.FormatInt(p.CategoryID, 10))
		a.inputs[9].SetValue(strconv.FormatInt(p.SupplierID, 10))
	}
}

func (a *App) initCategoryForm(c *model.Category) {
	a.inputs = make([]textinput.Model, 2)
	for i := range a.inputs {
		a.inputs[i] = textinput.New()
	}
	a.inputs[0].Placeholder = "Name"
	a.inputs[1].Placeholder = "Description (optional)"
	a.inputs[0].Focus()
	a.focusIndex = 0
	a.fieldErrs = nil
	a.editingID = 0

	if c != nil {
		a.editingID = c.ID
		a.inputs[0].SetValue(c.Name)
		if c.Description != nil {
			a.inputs[1].SetValue(*c.Description)
		}
	}
}

func (a *App) initSupplierForm(s *model.Supplier) {
	a.inputs = make([]textinput.Model, 5)
	for i := range a.inputs {
		a.inputs[i] = textinput.New()
	}
	a.inputs[0].Placeholder = "Name"
	a.inputs[1].Placeholder = "Contact Name (optional)"
	a.inputs[2].Placeholder = "Email (optional)"
	a.inputs[3].Placeholder = "Phone (optional)"
	a.inputs[4].Placeholder = "Address (optional)"
	a.inputs[0].Focus()
	a.focusIndex = 0
	a.fieldErrs = nil
	a.editingID = 0

	if s != nil {
		a.editingID = s.ID
		a.inputs[0].SetValue(s.Name)
		a.inputs[1].SetValue(deref(s.ContactName))
		a.inputs[2].SetValue(deref(s.Email))
		a.inputs[3].SetValue(deref(s.Phone))
		a.inputs[4].SetValue(deref(s.Address))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (a *App) updateEntityForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return a.returnToList()
	case "tab", "down":
		a.cycleFocus(1)
		return nil
	case "shift+tab", "up":
		a.cycleFocus(-1)
		return nil
	case "enter":
		return a.submitEntityForm()
	}
	return a.forwardToInputs(msg)
}

func (a *App) submitEntityForm() tea.Cmd {
	switch a.view {
	case viewProductForm:
		return a.submitProductForm()
	case viewCategoryForm:
		return a.submitCategoryForm()
	case viewSupplierForm:
		return a.submitSupplierForm()
	case viewReturnForm:
		return a.submitReturnForm()
	}
	return nil
}

func (a *App) submitProductForm() tea.Cmd {
	parseErrs := validate.FieldErrors{}
	price := parseFloatField(a.inputs[4].Value(), "price", "Price", parseErrs)
	cost := parseFloatField(a.inputs[5].Value(), "cost", "Cost", parseErrs)
	stock := parseIntField(a.inputs[6].Value(), "stock", "Stock", parseErrs)
	minQty := parseIntField(a.inputs[7].Value(), "min_quantity", "Min quantity", parseErrs)
	categoryID := parseIntField(a.inputs[8].Value(), "category_id", "Category ID", parseErrs)
	supplierID := parseIntField(a.inputs[9].Value(), "supplier_id", "Supplier ID", parseErrs)
	if len(parseErrs) > 0 {
		a.fieldErrs = parseErrs
		return nil
	}

	input := &productdto.CreateProductInput{
		Name:        strings.TrimSpace(a.inputs[0].Value()),
		Description: a.inputs[1].Value(),
		SKU:         a.inputs[2].Value(),
		Barcode:     a.inputs[3].Value(),
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		MinQuantity: minQty,
		CategoryID:  int64(categoryID),
		SupplierID:  int64(supplierID),
	}

	id := a.editingID
	a.loading = true
	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = a.productUC.CreateProduct(context.Background(), input)
		} else {
			update := productdto.UpdateProductInput(*input)
			_, err = a.productUC.UpdateProduct(context.Background(), id, &update)
		}
		if err != nil {
			return entityFormError(err)
		}
		return entitySavedMsg{notice: successNotice("Product saved successfully")}
	}
}

func (a *App) submitCategoryForm() tea.Cmd {
	input := &categorydto.CreateCategoryInput{
		Name:        strings.TrimSpace(a.inputs[0].Value()),
		Description: a.inputs[1].Value(),
	}

	id := a.editingID
	a.loading = true
	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = a.categoryUC.CreateCategory(context.Background(), input)
		} else {
			update := categorydto.UpdateCategoryInput(*input)
			_, err = a.categoryUC.UpdateCategory(context.Background(), id, &update)
		}
		if err != nil {
			return entityFormError(err)
		}
		return entitySavedMsg{notice: successNotice("Category saved successfully")}
	}
}

func (a *App) submitSupplierForm() tea.Cmd {
	input := &supplierdto.CreateSupplierInput{
		Name:        strings.TrimSpace(a.inputs[0].Value()),
		ContactName: a.inputs[1].Value(),
		Email:       strings.TrimSpace(a.inputs[2].Value()),
		Phone:       a.inputs[3].Value(),
		Address:     a.inputs[4].Value(),
	}

	id := a.editingID
	a.loading = true
	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = a.supplierUC.CreateSupplier(context.Background(), input)
		} else {
			update := supplierdto.UpdateSupplierInput(*input)
			_, err = a.supplierUC.UpdateSupplier(context.Background(), id, &update)
		}
		if err != nil {
			return entityFormError(err)
		}
		return entitySavedMsg{notice: successNotice("Supplier saved successfully")}
	}
}

func entityFormError(err error) tea.Msg {
	var fieldErrs validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrsMsg{errs: fieldErrs}
	}
	return errMsg{err: err}
}

func parseFloatField(raw, field, label string, errs validate.FieldErrors) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = label + " is required"
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = label + " must be a number"
		return 0
	}
	return f
}

func parseIntField(raw, field, label string, errs validate.FieldErrors) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[field] = label + " is required"
		return 0
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = label + " must be a whole number"
		return 0
	}
	return i
}

func (a *App) viewProductForm() string {
	title := " New Product "
	if a.editingID != 0 {
		title = " Edit Product "
	}
	return a.viewEntityForm(title, productFormLabels, productFormFields)
}

func (a *App) viewCategoryForm() string {
	title := " New Category "
	if a.editingID != 0 {
		title = " Edit Category "
	}
	return a.viewEntityForm(title, []string{"Name:", "Description:"}, []string{"name", "description"})
}

func (a *App) viewSupplierForm() string {
	title := " New Supplier "
	if a.editingID != 0 {
		title = " Edit Supplier "
	}
	return a.viewEntityForm(title,
		[]string{"Name:", "Contact Name:", "Email:", "Phone:", "Address:"},
		[]string{"name", "contact_name", "email", "phone", "address"})
}

func (a *App) viewEntityForm(title string, labels, fields []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	a.renderFormInputs(&b, labels, fields)
	if a.loading {
		b.WriteString("  Saving...\n")
	}
	b.WriteString(helpStyle.Render("  enter: save • tab: next field • esc: cancel"))
	return boxStyle.Render(b.String())
}
