package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/config"
	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/session"
	"github.com/zhengyang6751/inventory-management-system/internal/tui"
	"github.com/zhengyang6751/inventory-management-system/pkg/logger"

	authRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/auth/repository"
	authUCPkg "github.com/zhengyang6751/inventory-management-system/internal/auth/usecase"

	catRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/category/repository"
	catUCPkg "github.com/zhengyang6751/inventory-management-system/internal/category/usecase"

	custRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/customer/repository"
	custUCPkg "github.com/zhengyang6751/inventory-management-system/internal/customer/usecase"

	prodRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/product/repository"
	prodUCPkg "github.com/zhengyang6751/inventory-management-system/internal/product/usecase"

	saleRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/sale/repository"
	saleUCPkg "github.com/zhengyang6751/inventory-management-system/internal/sale/usecase"

	supRepoPkg "github.com/zhengyang6751/inventory-management-system/internal/supplier/repository"
	supUCPkg "github.com/zhengyang6751/inventory-management-system/internal/supplier/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&cfg.Logger)
	defer appLogger.Sync()

	// 3. Restore Session
	sess := session.NewStore(cfg.Session.Path)
	if err := sess.Load(); err != nil {
		appLogger.Warn("failed to restore session", zap.Error(err))
	}

	// 4. API Client
	client := api.NewClient(&cfg.API, sess, appLogger)

	// 5. Caches
	productCache := cache.NewList[model.Product]()
	categoryCache := cache.NewList[model.Category]()
	supplierCache := cache.NewList[model.Supplier]()
	customerCache := cache.NewList[model.Customer]()
	saleCache := cache.NewList[model.Sale]()
	allCaches := []cache.Invalidator{productCache, categoryCache, supplierCache, customerCache, saleCache}

	// 6. Repositories
	authRepo := authRepoPkg.NewRESTRepository(client)
	productRepo := prodRepoPkg.NewRESTRepository(client)
	categoryRepo := catRepoPkg.NewRESTRepository(client)
	supplierRepo := supRepoPkg.NewRESTRepository(client)
	customerRepo := custRepoPkg.NewRESTRepository(client)
	saleRepo := saleRepoPkg.NewRESTRepository(client)

	// 7. Use Cases
	authUC := authUCPkg.NewAuthUseCase(authRepo, sess, allCaches, appLogger)
	productUC := prodUCPkg.NewProductUseCase(productRepo, productCache, appLogger)
	categoryUC := catUCPkg.NewCategoryUseCase(categoryRepo, categoryCache, appLogger)
	supplierUC := supUCPkg.NewSupplierUseCase(supplierRepo, supplierCache, appLogger)
	customerUC := custUCPkg.NewCustomerUseCase(customerRepo, customerCache, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, saleCache, productCache, appLogger)

	// 8. Run the TUI
	app := tui.NewApp(authUC, productUC, categoryUC, supplierUC, customerUC, saleUC, sess, allCaches, appLogger)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		appLogger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
