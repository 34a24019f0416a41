package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
)

func (a *App) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := a.productUC.ListProducts(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return productsLoadedMsg{products: products}
	}
}

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := a.categoryUC.ListCategories(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return categoriesLoadedMsg{categories: categories}
	}
}

func (a *App) loadSuppliers() tea.Cmd {
	return func() tea.Msg {
		suppliers, err := a.supplierUC.ListSuppliers(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return suppliersLoadedMsg{suppliers: suppliers}
	}
}

func (a *App) loadSales() tea.Cmd {
	return func() tea.Msg {
		sales, err := a.saleUC.ListSales(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return salesLoadedMsg{sales: sales}
	}
}

// loadSummary fetches the revenue summary for the trailing 30 days.
func (a *App) loadSummary() tea.Cmd {
	return func() tea.Msg {
		end := time.Now()
		start := end.AddDate(0, 0, -30)
		summary, err := a.saleUC.SalesSummary(context.Background(), dto.SummaryRange{
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			// The summary is decoration on the sales page; the list
			// still renders without it.
			return summaryLoadedMsg{summary: nil}
		}
		return summaryLoadedMsg{summary: summary}
	}
}

func (a *App) switchView(v view) tea.Cmd {
	a.view = v
	a.cursor = 0
	a.loading = true
	switch v {
	case viewProducts:
		return a.loadProducts()
	case viewCategories:
		return a.loadCategories()
	case viewSuppliers:
		return a.loadSuppliers()
	case viewSales:
		return tea.Batch(a.loadSales(), a.loadSummary())
	case viewReturns:
		return a.loadReturns()
	}
	a.loading = false
	return nil
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "1":
		return a, a.switchView(viewProducts)
	case "2":
		return a, a.switchView(viewCategories)
	case "3":
		return a, a.switchView(viewSuppliers)
	case "4":
		return a, a.switchView(viewSales)
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < a.listLen()-1 {
			a.cursor++
		}
		return a, nil
	case "r":
		for _, c := range a.caches {
			c.Invalidate()
		}
		return a, a.switchView(a.view)
	case "n":
		return a, a.startCreate()
	case "e":
		return a, a.startEdit()
	case "d":
		return a, a.deleteSelected()
	case "t":
		if a.view == viewSales {
			a.initReturnForm()
			return a, textinput.Blink
		}
		return a, nil
	case "T":
		if a.view == viewSales {
			return a, a.switchView(viewReturns)
		}
		return a, nil
	case "esc":
		if a.view == viewReturns {
			return a, a.switchView(viewSales)
		}
		return a, nil
	case "L":
		return a, a.doLogout()
	}
	return a, nil
}

func (a *App) listLen() int {
	switch a.view {
	case viewProducts:
		return len(a.productList)
	case viewCategories:
		return len(a.categoryList)
	case viewSuppliers:
		return len(a.supplierList)
	case viewSales:
		return len(a.saleList)
	case viewReturns:
		return len(a.returnList)
	}
	return 0
}

func (a *App) startCreate() tea.Cmd {
	switch a.view {
	case viewProducts:
		a.view = viewProductForm
		a.initProductForm(nil)
	case viewCategories:
		a.view = viewCategoryForm
		a.initCategoryForm(nil)
	case viewSuppliers:
		a.view = viewSupplierForm
		a.initSupplierForm(nil)
	case viewSales:
		a.loading = true
		return a.loadSaleDeps()
	}
	return nil
}

func (a *App) startEdit() tea.Cmd {
	switch a.view {
	case viewProducts:
		if a.cursor < len(a.productList) {
			p := a.productList[a.cursor]
			a.view = viewProductForm
			a.initProductForm(&p)
		}
	case viewCategories:
		if a.cursor < len(a.categoryList) {
			c := a.categoryList[a.cursor]
			a.view = viewCategoryForm
			a.initCategoryForm(&c)
		}
	case viewSuppliers:
		if a.cursor < len(a.supplierList) {
			s := a.supplierList[a.cursor]
			a.view = viewSupplierForm
			a.initSupplierForm(&s)
		}
	}
	// Sales are immutable once created; no edit surface.
	return nil
}

func (a *App) deleteSelected() tea.Cmd {
	switch a.view {
	case viewProducts:
		if a.cursor < len(a.productList) {
			id := a.productList[a.cursor].ID
			a.loading = true
			return func() tea.Msg {
				if err := a.productUC.DeleteProduct(context.Background(), id); err != nil {
					return errMsg{err: err}
				}
				return entitySavedMsg{notice: successNotice("Product deleted successfully")}
			}
		}
	case viewCategories:
		if a.cursor < len(a.categoryList) {
			id := a.categoryList[a.cursor].ID
			a.loading = true
			return func() tea.Msg {
				if err := a.categoryUC.DeleteCategory(context.Background(), id); err != nil {
					return errMsg{err: err}
				}
				return entitySavedMsg{notice: successNotice("Category deleted successfully")}
			}
		}
	case viewSuppliers:
		if a.cursor < len(a.supplierList) {
			id := a.supplierList[a.cursor].ID
			a.loading = true
			return func() tea.Msg {
				if err := a.supplierUC.DeleteSupplier(context.Background(), id); err != nil {
					return errMsg{err: err}
				}
				return entitySavedMsg{notice: successNotice("Supplier deleted successfully")}
			}
		}
	}
	return nil
}

func (a *App) viewProducts() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Products ") + "\n\n")

	if a.loading {
		b.WriteString("  Loading...\n")
		return b.String()
	}
	if len(a.productList) == 0 {
		b.WriteString(helpStyle.Render("  No products") + "\n")
	}

	for i, p := range a.productList {
		line := fmt.Sprintf("%-24s  $%8.2f  stock %4d", truncate(p.Name, 24), p.Price, p.Stock)
		if p.LowStock() {
			line += lowStockStyle.Render("  LOW")
		}
		b.WriteString(a.listLine(i, line))
	}

	b.WriteString("\n" + helpStyle.Render("  n: new • e: edit • d: delete • r: reload • 1-4: pages • L: logout • q: quit"))
	return b.String()
}

func (a *App) viewCategories() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Categories ") + "\n\n")

	if a.loading {
		b.WriteString("  Loading...\n")
		return b.String()
	}
	if len(a.categoryList) == 0 {
		b.WriteString(helpStyle.Render("  No categories") + "\n")
	}

	for i, c := range a.categoryList {
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		line := fmt.Sprintf("%-24s  %s", truncate(c.Name, 24), truncate(desc, 40))
		b.WriteString(a.listLine(i, line))
	}

	b.WriteString("\n" + helpStyle.Render("  n: new • e: edit • d: delete • r: reload • 1-4: pages • L: logout • q: quit"))
	return b.String()
}

func (a *App) viewSuppliers() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Suppliers ") + "\n\n")

	if a.loading {
		b.WriteString("  Loading...\n")
		return b.String()
	}
	if len(a.supplierList) == 0 {
		b.WriteString(helpStyle.Render("  No suppliers") + "\n")
	}

	for i, s := range a.supplierList {
		email := ""
		if s.Email != nil {
			email = *s.Email
		}
		line := fmt.Sprintf("%-24s  %s", truncate(s.Name, 24), email)
		b.WriteString(a.listLine(i, line))
	}

	b.WriteString("\n" + helpStyle.Render("  n: new • e: edit • d: delete • r: reload • 1-4: pages • L: logout • q: quit"))
	return b.String()
}

func (a *App) viewSales() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Sales ") + "\n")

	if a.summary != nil {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  last 30 days: %d sales, $%.2f revenue",
			a.summary.TotalSales, a.summary.TotalRevenue)) + "\n")
	}
	b.WriteString("\n")

	if a.loading {
		b.WriteString("  Loading...\n")
		return b.String()
	}
	if len(a.saleList) == 0 {
		b.WriteString(helpStyle.Render("  No sales") + "\n")
	}

	for i, s := range a.saleList {
		productName := fmt.Sprintf("#%d", s.ProductID)
		if s.Product != nil {
			productName = s.Product.Name
		}
		customerName := fmt.Sprintf("#%d", s.CustomerID)
		if s.Customer != nil {
			customerName = s.Customer.FullName
		}
		line := fmt.Sprintf("%-20s  %-20s  x%-3d  $%8.2f  %s",
			truncate(productName, 20), truncate(customerName, 20),
			s.Quantity, s.TotalAmount, s.CreatedAt.Format("2006-01-02"))
		b.WriteString(a.listLine(i, line))
	}

	b.WriteString("\n" + helpStyle.Render("  n: new sale • t: return selected • T: returns list • r: reload • 1-4: pages • L: logout • q: quit"))
	return b.String()
}

func (a *App) listLine(i int, line string) string {
	if i == a.cursor {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
