package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/sanitize"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	cache        *mockSvc.MockCategoryCache
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := mockSvc.NewMockCategoryCache(t)

	return categoryServiceFixtures{
		service: NewCategoryService(CategoryServiceParams{
			CategoryRepo: categoryRepo,
			ProductRepo:  productRepo,
			Cache:        cache,
			Sanitizer:    sanitize.NewTextSanitizer(),
			Logger:       newDiscardLogger(),
		}),
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cache,
	}
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "Mode", IsActive: true}}

	t.Run("active listing served from cache", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.cache.EXPECT().GetActive(ctx).Return(categories, true, nil)

		got, err := fx.service.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, categories, got)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.cache.EXPECT().GetActive(ctx).Return(nil, false, nil)
		fx.categoryRepo.EXPECT().List(ctx, true).Return(categories, nil)
		fx.cache.EXPECT().SetActive(ctx, categories).Return(nil)

		got, err := fx.service.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, categories, got)
	})

	t.Run("cache failures fall back to the store", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.cache.EXPECT().GetActive(ctx).Return(nil, false, errors.New("connection refused"))
		fx.categoryRepo.EXPECT().List(ctx, true).Return(categories, nil)
		fx.cache.EXPECT().SetActive(ctx, categories).Return(errors.New("connection refused"))

		got, err := fx.service.List(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, categories, got)
	})

	t.Run("full listing bypasses the cache", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.categoryRepo.EXPECT().List(ctx, false).Return(categories, nil)

		_, err := fx.service.List(ctx, false)
		require.NoError(t, err)
	})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("created and cache invalidated", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.categoryRepo.EXPECT().ExistsByName(ctx, "Mode", mock.AnythingOfType("uuid.UUID")).Return(false, nil)
		fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx).Return(nil)

		category, err := fx.service.Create(ctx, usecase.CategoryInput{Name: ptr(" <b>Mode</b> "), Order: ptr(2)})
		require.NoError(t, err)
		assert.Equal(t, "Mode", category.Name)
		assert.Equal(t, 2, category.Order)
		assert.True(t, category.IsActive)
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createTestCategoryService(t)
		fx.categoryRepo.EXPECT().ExistsByName(ctx, "mode", mock.AnythingOfType("uuid.UUID")).Return(true, nil)

		_, err := fx.service.Create(ctx, usecase.CategoryInput{Name: ptr("mode")})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	})

	t.Run("name required", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.Create(ctx, usecase.CategoryInput{Name: ptr("  ")})
		requireAppErrorCode(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changing only the case skips the uniqueness check", func(t *testing.T) {
		fx := createTestCategoryService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Mode", IsActive: true}
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx).Return(nil)

		updated, err := fx.service.Update(ctx, category.ID, usecase.CategoryInput{Name: ptr("MODE")})
		require.NoError(t, err)
		assert.Equal(t, "MODE", updated.Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCategoryService(t)
		id := uuid.New()
		fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.Update(ctx, id, usecase.CategoryInput{Name: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while products reference it", func(t *testing.T) {
		fx := createTestCategoryService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Mode"}
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.productRepo.EXPECT().
			Count(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
				return f.CategoryID != nil && *f.CategoryID == category.ID
			})).
			Return(int64(3), nil)

		err := fx.service.Delete(ctx, category.ID)
		appErr := requireAppErrorCode(t, err, "CATEGORY_IN_USE")
		assert.Contains(t, appErr.Message(), "3 produit(s)")
	})

	t.Run("deleted when unused", func(t *testing.T) {
		fx := createTestCategoryService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Mode"}
		fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
		fx.productRepo.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil)
		fx.categoryRepo.EXPECT().Delete(ctx, category.ID).Return(nil)
		fx.cache.EXPECT().Invalidate(ctx).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, category.ID))
	})
}

func TestCategoryService_ToggleStatus(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Mode", IsActive: true}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(errors.New("connection refused"))

	toggled, err := fx.service.ToggleStatus(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}
