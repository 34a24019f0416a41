package tui

import (
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/sale/workflow"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type errMsg struct{ err error }

type fieldErrsMsg struct{ errs validate.FieldErrors }

type noticeMsg struct{ notice workflow.Notice }

type loggedInMsg struct{ user model.User }

type loggedOutMsg struct{}

type productsLoadedMsg struct{ products []model.Product }

type categoriesLoadedMsg struct{ categories []model.Category }

type suppliersLoadedMsg struct{ suppliers []model.Supplier }

type salesLoadedMsg struct{ sales []model.Sale }

type returnsLoadedMsg struct{ returns []model.Return }

type summaryLoadedMsg struct{ summary *model.SalesSummary }

type entitySavedMsg struct{ notice workflow.Notice }

// saleDepsLoadedMsg carries the snapshots a new sale workflow opens
// with.
type saleDepsLoadedMsg struct {
	products  []model.Product
	customers []model.Customer
}

type customerResultMsg struct{ result workflow.CustomerResult }

type submitResultMsg struct{ result workflow.SubmitResult }
