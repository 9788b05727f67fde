package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/sanitize"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	userRepo     *mockRepo.MockUserRepository
	notifier     *mockSvc.MockNotificationService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo:  productRepo,
			CategoryRepo: categoryRepo,
			UserRepo:     userRepo,
			Sanitizer:    sanitize.NewTextSanitizer(),
			Notifier:     notifier,
			Logger:       newDiscardLogger(),
		}),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func newApprovedMerchant() *entity.User {
	merchant := &entity.User{ID: uuid.New(), Phone: "+237690000010", Name: "Jean", IsActive: true}
	merchant.ChangeRole(entity.RoleMerchant)
	merchant.Merchant.ShopName = "Chez Jean"
	merchant.SetApproved(true)

	return merchant
}

func newProduct(merchantID, categoryID uuid.UUID) *entity.Product {
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        "Savon",
		Description: "Savon noir",
		Price:       1500,
		Stock:       10,
		CategoryID:  categoryID,
		MerchantID:  merchantID,
		IsActive:    true,
	}
	product.Approve()

	return product
}

func TestProductService_AdminCreate(t *testing.T) {
	ctx := context.Background()
	merchant := newApprovedMerchant()
	categoryID := uuid.New()

	t.Run("created approved with sanitized text", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.AdminCreate(ctx, usecase.ProductInput{
			Name:        ptr("<b>Savon</b>"),
			Description: ptr("Savon <script>alert(1)</script>noir"),
			Price:       ptr(1500.0),
			CategoryID:  &categoryID,
			MerchantID:  &merchant.ID,
			Tags:        &[]string{" bio ", "<i></i>"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Savon", product.Name)
		assert.Equal(t, "Savon noir", product.Description)
		assert.Equal(t, []string{"bio"}, product.Tags)
		assert.Equal(t, entity.ProductStatusApproved, product.Status)
		assert.True(t, product.IsApproved)
		assert.True(t, product.IsActive)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.AdminCreate(ctx, usecase.ProductInput{Name: ptr("Savon"), Price: ptr(10.0)})
		appErr := requireAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.Equal(t, "Veuillez fournir le nom, la description, le prix, la catégorie et le marchand", appErr.Message())
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.AdminCreate(ctx, usecase.ProductInput{
			Name: ptr("Savon"), Description: ptr("d"), Price: ptr(10.0), CategoryID: &categoryID, MerchantID: &merchant.ID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
	})

	t.Run("unknown merchant", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.AdminCreate(ctx, usecase.ProductInput{
			Name: ptr("Savon"), Description: ptr("d"), Price: ptr(10.0), CategoryID: &categoryID, MerchantID: &merchant.ID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidMerchant)
	})

	t.Run("negative price", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)

		_, err := fx.service.AdminCreate(ctx, usecase.ProductInput{
			Name: ptr("Savon"), Description: ptr("d"), Price: ptr(-1.0), CategoryID: &categoryID, MerchantID: &merchant.ID,
		})
		appErr := requireAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.Equal(t, "Le prix doit être positif", appErr.Message())
	})
}

func TestProductService_AdminUpdate_StatusKeepsApprovalInSync(t *testing.T) {
	ctx := context.Background()

	cases := []entity.ProductStatus{
		entity.ProductStatusPending,
		entity.ProductStatusApproved,
		entity.ProductStatusRejected,
		entity.ProductStatusInactive,
	}
	for _, status := range cases {
		t.Run(string(status), func(t *testing.T) {
			fx := createTestProductService(t)
			product := newProduct(uuid.New(), uuid.New())
			fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

			updated, err := fx.service.AdminUpdate(ctx, product.ID, usecase.ProductInput{Status: &status})
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
			assert.Equal(t, status == entity.ProductStatusApproved, updated.IsApproved)
		})
	}
}

func TestProductService_ApproveAndReject(t *testing.T) {
	ctx := context.Background()
	merchant := newApprovedMerchant()
	merchant.FCMToken = "merchant-device"

	t.Run("approve clears reason and notifies", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(merchant.ID, uuid.New())
		product.Reject("flou")
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.notifier.EXPECT().
			SendSingleNotification(ctx, "merchant-device", "Produit approuvé", mock.Anything, mock.Anything).
			Return(nil)

		approved, err := fx.service.Approve(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)
		assert.Empty(t, approved.RejectionReason)
	})

	t.Run("reject without reason uses default", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(merchant.ID, uuid.New())
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.notifier.EXPECT().
			SendSingleNotification(ctx, "merchant-device", "Produit rejeté", mock.Anything, mock.Anything).
			Return(nil)

		rejected, err := fx.service.Reject(ctx, product.ID, "")
		require.NoError(t, err)
		assert.False(t, rejected.IsApproved)
		assert.Equal(t, entity.ProductStatusRejected, rejected.Status)
		assert.Equal(t, entity.DefaultRejectionReason, rejected.RejectionReason)
	})

	t.Run("missing product", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.Approve(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_MerchantCreate(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()
	input := usecase.ProductInput{
		Name: ptr("Savon"), Description: ptr("Savon noir"), Price: ptr(1500.0), CategoryID: &categoryID,
	}

	t.Run("unapproved merchant is forbidden", func(t *testing.T) {
		fx := createTestProductService(t)
		merchant := newApprovedMerchant()
		merchant.SetApproved(false)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)

		_, err := fx.service.MerchantCreate(ctx, merchant.ID, input)
		assert.ErrorIs(t, err, domainerrors.ErrMerchantNotApproved)
	})

	t.Run("created pending", func(t *testing.T) {
		fx := createTestProductService(t)
		merchant := newApprovedMerchant()
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		withStatus := input
		approved := entity.ProductStatusApproved
		withStatus.Status = &approved
		product, err := fx.service.MerchantCreate(ctx, merchant.ID, withStatus)

		require.NoError(t, err)
		assert.Equal(t, entity.ProductStatusPending, product.Status)
		assert.False(t, product.IsApproved)
		assert.Equal(t, merchant.ID, product.MerchantID)
	})
}

func TestProductService_MerchantUpdate(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	t.Run("editing the price resets to pending", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(merchantID, uuid.New())
		fx.productRepo.EXPECT().FindByIDAndMerchant(ctx, product.ID, merchantID).Return(product, nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

		updated, err := fx.service.MerchantUpdate(ctx, merchantID, product.ID, usecase.ProductInput{Price: ptr(2000.0)})
		require.NoError(t, err)
		assert.Equal(t, entity.ProductStatusPending, updated.Status)
		assert.False(t, updated.IsApproved)
	})

	t.Run("editing the stock keeps approval", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(merchantID, uuid.New())
		fx.productRepo.EXPECT().FindByIDAndMerchant(ctx, product.ID, merchantID).Return(product, nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

		updated, err := fx.service.MerchantUpdate(ctx, merchantID, product.ID, usecase.ProductInput{Stock: ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, entity.ProductStatusApproved, updated.Status)
		assert.Equal(t, 3, updated.Stock)
	})

	t.Run("not owned", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		fx.productRepo.EXPECT().FindByIDAndMerchant(ctx, id, merchantID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.MerchantUpdate(ctx, merchantID, id, usecase.ProductInput{Stock: ptr(3)})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotOwned)
	})

	t.Run("delete not owned", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		fx.productRepo.EXPECT().DeleteByIDAndMerchant(ctx, id, merchantID).Return(repository.ErrProductNotFound)

		assert.ErrorIs(t, fx.service.MerchantDelete(ctx, merchantID, id), domainerrors.ErrProductNotOwned)
	})
}

func TestProductService_PublicList(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	merchant := newApprovedMerchant()
	category := &entity.Category{ID: uuid.New(), Name: "Hygiène"}
	orphan := newProduct(uuid.New(), uuid.New())
	owned := newProduct(merchant.ID, category.ID)

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.IsApproved != nil && *f.IsApproved &&
				f.IsActive != nil && *f.IsActive &&
				f.Status != nil && *f.Status == entity.ProductStatusApproved &&
				f.SearchTags && f.Sort == repository.ProductSortPopular &&
				f.Offset == 10 && f.Limit == 10
		})).
		Return([]*entity.Product{owned, orphan}, int64(12), nil)
	fx.categoryRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Category{category}, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.User{merchant}, nil)

	page, err := fx.service.PublicList(ctx, usecase.PublicProductQuery{
		Sort: "popular",
		Page: entity.PageRequest{Page: 2, Limit: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Pagination{Page: 2, Limit: 10, Total: 12, Pages: 2}, page.Pagination)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Hygiène", page.Products[0].CategoryName)
	assert.Equal(t, "Chez Jean", page.Products[0].MerchantName)
	assert.Equal(t, entity.UncategorizedName, page.Products[1].CategoryName)
	assert.Equal(t, "Inconnu", page.Products[1].MerchantName)
}

func TestProductService_PublicGet(t *testing.T) {
	ctx := context.Background()

	t.Run("counts the view", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(uuid.New(), uuid.New())
		product.Views = 4
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.productRepo.EXPECT().IncrementViews(ctx, product.ID).Return(nil)
		fx.categoryRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)
		fx.userRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return(nil, nil)

		view, err := fx.service.PublicGet(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), view.Views)
	})

	t.Run("pending products are hidden", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(uuid.New(), uuid.New())
		product.RequireReview()
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.PublicGet(ctx, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("inactive products are hidden", func(t *testing.T) {
		fx := createTestProductService(t)
		product := newProduct(uuid.New(), uuid.New())
		product.IsActive = false
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.PublicGet(ctx, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_AdminList_StatusBucket(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.Status != nil && *f.Status == entity.ProductStatusPending &&
				f.IsApproved != nil && !*f.IsApproved && f.Search == "savon"
		})).
		Return([]*entity.Product{}, int64(0), nil)

	views, err := fx.service.AdminList(ctx, usecase.AdminProductQuery{Status: "pending", Search: " savon "})
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = fx.service.AdminList(ctx, usecase.AdminProductQuery{Status: "bogus"})
	requireAppErrorCode(t, err, "VALIDATION_ERROR")
}
