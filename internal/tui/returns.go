package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhengyang6751/inventory-management-system/internal/sale/dto"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

func (a *App) loadReturns() tea.Cmd {
	return func() tea.Msg {
		returns, err := a.saleUC.ListReturns(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return returnsLoadedMsg{returns: returns}
	}
}

// initReturnForm opens a return against the sale under the cursor.
func (a *App) initReturnForm() {
	if a.cursor >= len(a.saleList) {
		return
	}
	s := a.saleList[a.cursor]

	a.inputs = make([]textinput.Model, 3)
	for i := range a.inputs {
		a.inputs[i] = textinput.New()
	}
	a.inputs[0].Placeholder = fmt.Sprintf("Quantity (sold: %d)", s.Quantity)
	a.inputs[1].Placeholder = "Reason (optional)"
	a.inputs[2].Placeholder = "Notes (optional)"
	a.inputs[0].Focus()
	a.focusIndex = 0
	a.fieldErrs = nil
	// editingID carries the sale the return applies to.
	a.editingID = s.ID
	a.view = viewReturnForm
}

func (a *App) submitReturnForm() tea.Cmd {
	var saleProductID int64
	for _, s := range a.saleList {
		if s.ID == a.editingID {
			saleProductID = s.ProductID
		}
	}

	parseErrs := validate.FieldErrors{}
	qty := parseIntField(a.inputs[0].Value(), "quantity", "Quantity", parseErrs)
	if len(parseErrs) > 0 {
		a.fieldErrs = parseErrs
		return nil
	}

	input := &dto.CreateReturnInput{
		SaleID:    a.editingID,
		ProductID: saleProductID,
		Quantity:  qty,
		Reason:    a.inputs[1].Value(),
		Notes:     a.inputs[2].Value(),
	}
	a.loading = true
	return func() tea.Msg {
		if _, err := a.saleUC.CreateReturn(context.Background(), input); err != nil {
			return entityFormError(err)
		}
		return entitySavedMsg{notice: successNotice("Return recorded successfully")}
	}
}

func (a *App) viewReturns() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Returns ") + "\n\n")

	if a.loading {
		b.WriteString("  Loading...\n")
		return b.String()
	}
	if len(a.returnList) == 0 {
		b.WriteString(helpStyle.Render("  No returns") + "\n")
	}

	for i, ret := range a.returnList {
		reason := ""
		if ret.Reason != nil {
			reason = *ret.Reason
		}
		line := fmt.Sprintf("sale #%-6d  x%-3d  %-30s  %s",
			ret.SaleID, ret.Quantity, truncate(reason, 30), ret.CreatedAt.Format("2006-01-02"))
		b.WriteString(a.listLine(i, line))
	}

	b.WriteString("\n" + helpStyle.Render("  esc: back to sales • r: reload • 1-4: pages • q: quit"))
	return b.String()
}

func (a *App) viewReturnForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(" Return for Sale #%d ", a.editingID)) + "\n\n")
	a.renderFormInputs(&b, []string{"Quantity:", "Reason:", "Notes:"}, []string{"quantity", "reason", "notes"})
	if a.loading {
		b.WriteString("  Saving...\n")
	}
	b.WriteString(helpStyle.Render("  enter: record return • tab: next field • esc: cancel"))
	return boxStyle.Render(b.String())
}
