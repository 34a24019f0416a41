package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	customerdto "github.com/zhengyang6751/inventory-management-system/internal/customer/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

// Sections of the sale form, top to bottom.
const (
	sectionProduct = iota
	sectionCustomer
	sectionQuantity
	sectionPrice
	sectionNotes
	sectionCount
)

func (a *App) loadSaleDeps() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		products, err := a.productUC.ListProducts(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		customers, err := a.customerUC.ListCustomers(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return saleDepsLoadedMsg{products: products, customers: customers}
	}
}

func (a *App) openSaleWorkflow(msg saleDepsLoadedMsg) tea.Cmd {
	a.loading = false
	a.notice = workflow.Notice{}
	a.wf = workflow.New(msg.products, msg.customers, a.customerUC, a.saleUC, workflow.Hooks{}, a.logger)
	a.wfSection = sectionProduct
	a.wfProductIdx = -1
	a.wfSuggestIdx = 0
	a.wfFieldErrs = nil

	a.searchInput = textinput.New()
	a.searchInput.Placeholder = "Search customer..."

	a.qtyInput = textinput.New()
	a.qtyInput.Placeholder = "Quantity"

	a.priceInput = textinput.New()
	a.priceInput.Placeholder = "Unit Price"

	a.notesInput = textinput.New()
	a.notesInput.Placeholder = "Notes (optional)"

	a.view = viewSaleForm
	return textinput.Blink
}

func (a *App) closeSaleWorkflow() tea.Cmd {
	if a.wf != nil {
		a.wf.Close()
		a.wf = nil
	}
	a.view = viewSales
	a.loading = true
	return tea.Batch(a.loadSales(), a.loadSummary())
}

func (a *App) updateSaleForm(msg tea.KeyMsg) tea.Cmd {
	if a.wf == nil {
		a.view = viewSales
		return nil
	}

	if a.wf.State() == workflow.StateCreating {
		return a.updateCustomerSubForm(msg)
	}

	switch msg.String() {
	case "esc":
		return a.closeSaleWorkflow()
	case "tab":
		a.setSection((a.wfSection + 1) % sectionCount)
		return nil
	case "shift+tab":
		a.setSection((a.wfSection - 1 + sectionCount) % sectionCount)
		return nil
	case "ctrl+n":
		a.wf.StartCreate()
		a.initCustomerSubForm()
		return textinput.Blink
	case "ctrl+s":
		return a.submitSale()
	}

	switch a.wfSection {
	case sectionProduct:
		return a.updateProductPicker(msg)
	case sectionCustomer:
		return a.updateCustomerSearch(msg)
	case sectionQuantity:
		var cmd tea.Cmd
		a.qtyInput, cmd = a.qtyInput.Update(msg)
		return cmd
	case sectionPrice:
		var cmd tea.Cmd
		a.priceInput, cmd = a.priceInput.Update(msg)
		return cmd
	case sectionNotes:
		var cmd tea.Cmd
		a.notesInput, cmd = a.notesInput.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) setSection(s int) {
	a.searchInput.Blur()
	a.qtyInput.Blur()
	a.priceInput.Blur()
	a.notesInput.Blur()

	a.wfSection = s
	switch s {
	case sectionCustomer:
		a.searchInput.Focus()
	case sectionQuantity:
		a.qtyInput.Focus()
	case sectionPrice:
		a.priceInput.Focus()
	case sectionNotes:
		a.notesInput.Focus()
	}
}

// updateProductPicker cycles through the product snapshot. Choosing a
// product resets the unit price to that product's price; an entered
// quantity is left alone.
func (a *App) updateProductPicker(msg tea.KeyMsg) tea.Cmd {
	products := a.wf.Products()
	if len(products) == 0 {
		return nil
	}

	switch msg.String() {
	case "left", "up", "k":
		if a.wfProductIdx > 0 {
			a.wfProductIdx--
		} else if a.wfProductIdx < 0 {
			a.wfProductIdx = 0
		}
	case "right", "down", "j", "enter", " ":
		if a.wfProductIdx < len(products)-1 {
			a.wfProductIdx++
		}
	default:
		return nil
	}

	p := products[a.wfProductIdx]
	a.wf.SelectProduct(p.ID)
	a.priceInput.SetValue(strconv.FormatFloat(p.Price, 'f', 2, 64))
	return nil
}

func (a *App) updateCustomerSearch(msg tea.KeyMsg) tea.Cmd {
	suggestions := a.wf.Suggestions()

	switch msg.String() {
	case "up":
		if a.wfSuggestIdx > 0 {
			a.wfSuggestIdx--
		}
		return nil
	case "down":
		if a.wfSuggestIdx < len(suggestions)-1 {
			a.wfSuggestIdx++
		}
		return nil
	case "enter":
		if a.wfSuggestIdx < len(suggestions) {
			chosen := suggestions[a.wfSuggestIdx]
			a.wf.Select(chosen.ID)
			a.searchInput.SetValue(chosen.FullName)
			a.searchInput.CursorEnd()
		}
		return nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.wf.SetSearch(a.searchInput.Value())
	a.wfSuggestIdx = 0
	return cmd
}

func (a *App) initCustomerSubForm() {
	a.custInputs = make([]textinput.Model, 4)
	for i := range a.custInputs {
		a.custInputs[i] = textinput.New()
	}
	a.custInputs[0].Placeholder = "Full Name"
	a.custInputs[1].Placeholder = "Email (optional)"
	a.custInputs[2].Placeholder = "Phone (optional)"
	a.custInputs[3].Placeholder = "Address (optional)"
	a.custInputs[0].Focus()
	a.focusIndex = 0
	a.wfFieldErrs = nil
}

func (a *App) updateCustomerSubForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.wf.CancelCreate()
		a.searchInput.SetValue(a.wf.Search())
		a.wfFieldErrs = nil
		return nil
	case "tab", "down":
		a.custInputs[a.focusIndex].Blur()
		a.focusIndex = (a.focusIndex + 1) % len(a.custInputs)
		a.custInputs[a.focusIndex].Focus()
		return nil
	case "shift+tab", "up":
		a.custInputs[a.focusIndex].Blur()
		a.focusIndex = (a.focusIndex - 1 + len(a.custInputs)) % len(a.custInputs)
		a.custInputs[a.focusIndex].Focus()
		return nil
	case "enter":
		return a.submitCustomerSubForm()
	}

	var cmd tea.Cmd
	a.custInputs[a.focusIndex], cmd = a.custInputs[a.focusIndex].Update(msg)
	return cmd
}

func (a *App) submitCustomerSubForm() tea.Cmd {
	input := &customerdto.CreateCustomerInput{
		FullName: strings.TrimSpace(a.custInputs[0].Value()),
		Email:    strings.TrimSpace(a.custInputs[1].Value()),
		Phone:    a.custInputs[2].Value(),
		Address:  a.custInputs[3].Value(),
	}
	wf := a.wf
	a.loading = true
	return func() tea.Msg {
		return customerResultMsg{result: wf.CreateCustomer(context.Background(), input)}
	}
}

func (a *App) applyCustomerResult(res workflow.CustomerResult) tea.Cmd {
	a.loading = false
	if a.wf == nil {
		return nil
	}

	if res.FieldErrors != nil {
		a.wfFieldErrs = res.FieldErrors
		return nil
	}

	a.notice = res.Notice
	a.wfFieldErrs = nil
	// The resolver moved; mirror its search text (selected name, or the
	// attempted email after a collision).
	a.searchInput.SetValue(a.wf.Search())
	a.searchInput.CursorEnd()
	a.wfSuggestIdx = 0
	if a.wf.State() != workflow.StateCreating {
		a.setSection(sectionCustomer)
	}
	return nil
}

func (a *App) submitSale() tea.Cmd {
	parseErrs := validate.FieldErrors{}

	qtyRaw := strings.TrimSpace(a.qtyInput.Value())
	qty := 0
	if qtyRaw != "" {
		n, err := strconv.Atoi(qtyRaw)
		if err != nil {
			parseErrs["quantity"] = "Quantity must be a whole number"
		} else {
			qty = n
		}
	}

	priceRaw := strings.TrimSpace(a.priceInput.Value())
	price := 0.0
	if priceRaw != "" {
		f, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			parseErrs["unit_price"] = "Unit price must be a number"
		} else {
			price = f
		}
	}

	if len(parseErrs) > 0 {
		a.wfFieldErrs = parseErrs
		return nil
	}

	a.wf.SetQuantity(qty)
	a.wf.SetUnitPrice(price)
	a.wf.SetNotes(a.notesInput.Value())

	wf := a.wf
	a.loading = true
	return func() tea.Msg {
		return submitResultMsg{result: wf.Submit(context.Background())}
	}
}

func (a *App) applySubmitResult(res workflow.SubmitResult) tea.Cmd {
	a.loading = false
	if a.wf == nil {
		return nil
	}

	if res.FieldErrors != nil {
		a.wfFieldErrs = res.FieldErrors
		return nil
	}
	a.notice = res.Notice

	if res.Closed {
		a.wf = nil
		a.view = viewSales
		a.loading = true
		return tea.Batch(a.loadSales(), a.loadSummary())
	}
	// Failed submit: the form keeps every entered value for retry.
	return nil
}

func (a *App) viewSaleForm() string {
	if a.wf == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" New Sale ") + "\n\n")

	// Product
	b.WriteString(a.sectionLabel(sectionProduct, "Product"))
	if p, ok := a.wf.SelectedProduct(); ok {
		b.WriteString(fmt.Sprintf("  %s - $%.2f (Stock: %d)\n", p.Name, p.Price, p.Stock))
	} else {
		b.WriteString(helpStyle.Render("  Select a product (←/→)") + "\n")
	}
	a.renderFieldError(&b, "product_id")

	// Customer
	b.WriteString("\n" + a.sectionLabel(sectionCustomer, "Customer"))
	b.WriteString("  " + a.searchInput.View() + "\n")
	if a.wf.State() == workflow.StateSearching {
		suggestions := a.wf.Suggestions()
		if len(suggestions) == 0 {
			b.WriteString(helpStyle.Render("  No customers found") + "\n")
		}
		for i, c := range suggestions {
			line := c.FullName
			if c.Email != nil {
				line += helpStyle.Render("  " + *c.Email)
			}
			if i == a.wfSuggestIdx {
				b.WriteString(selectedStyle.Render("  > "+line) + "\n")
			} else {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	if c, ok := a.wf.Resolved(); ok {
		b.WriteString(successStyle.Render(fmt.Sprintf("  ✓ %s", c.FullName)) + "\n")
	}

	if a.wf.State() == workflow.StateCreating {
		b.WriteString(a.viewCustomerSubForm())
	}

	// Quantity / price / notes
	b.WriteString("\n" + a.sectionLabel(sectionQuantity, "Quantity"))
	b.WriteString("  " + a.qtyInput.View() + "\n")
	a.renderFieldError(&b, "quantity")

	b.WriteString("\n" + a.sectionLabel(sectionPrice, "Unit Price"))
	b.WriteString("  " + a.priceInput.View() + "\n")
	a.renderFieldError(&b, "unit_price")

	b.WriteString("\n" + a.sectionLabel(sectionNotes, "Notes"))
	b.WriteString("  " + a.notesInput.View() + "\n")

	if a.loading {
		b.WriteString("\n  Working...\n")
	}

	b.WriteString("\n" + helpStyle.Render("  tab: next field • ctrl+n: new customer • ctrl+s: create sale • esc: cancel"))
	return boxStyle.Render(b.String())
}

func (a *App) viewCustomerSubForm() string {
	var b strings.Builder
	b.WriteString("\n  " + selectedStyle.Render("New Customer") + "\n")

	labels := []string{"Full Name:", "Email:", "Phone:", "Address:"}
	fields := []string{"full_name", "email", "phone", "address"}
	for i, input := range a.custInputs {
		b.WriteString(fmt.Sprintf("  %s\n", labels[i]))
		b.WriteString("  " + input.View() + "\n")
		if msg, ok := a.wfFieldErrs[fields[i]]; ok {
			b.WriteString("  " + fieldErrorStyle.Render(msg) + "\n")
		}
	}
	b.WriteString(helpStyle.Render("  enter: create customer • esc: cancel") + "\n")
	return b.String()
}

func (a *App) sectionLabel(section int, label string) string {
	if a.wfSection == section && a.wf.State() != workflow.StateCreating {
		return selectedStyle.Render("▸ "+label) + "\n"
	}
	return "  " + label + "\n"
}

func (a *App) renderFieldError(b *strings.Builder, field string) {
	if msg, ok := a.wfFieldErrs[field]; ok {
		b.WriteString("  " + fieldErrorStyle.Render(msg) + "\n")
	}
}

func (a *App) updateWorkflowInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	a.qtyInput, cmd = a.qtyInput.Update(msg)
	cmds = append(cmds, cmd)
	a.priceInput, cmd = a.priceInput.Update(msg)
	cmds = append(cmds, cmd)
	a.notesInput, cmd = a.notesInput.Update(msg)
	cmds = append(cmds, cmd)
	for i := range a.custInputs {
		a.custInputs[i], cmd = a.custInputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
