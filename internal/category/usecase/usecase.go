package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/category"
	"github.com/zhengyang6751/inventory-management-system/internal/category/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type categoryUseCase struct {
	repo   category.Repository
	cache  *cache.List[model.Category]
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, c *cache.List[model.Category], log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	if categories, ok := uc.cache.Get(); ok {
		return categories, nil
	}

	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Put(categories)
	return categories, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	cat, err := uc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("category created", zap.Int64("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	cat, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate()
	uc.logger.Info("category updated", zap.Int64("id", id))
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate()
	uc.logger.Info("category deleted", zap.Int64("id", id))
	return nil
}
