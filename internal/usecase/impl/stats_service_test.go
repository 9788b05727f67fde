package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()

	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	merchant, notApproved := entity.RoleMerchant, false
	productPending := entity.ProductStatusPending
	orderPending, orderDelivered := entity.OrderStatusPending, entity.OrderStatusDelivered

	userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(40), nil)
	userRepo.EXPECT().Count(ctx, repository.UserFilter{Role: &merchant, Approved: &notApproved}).Return(int64(2), nil)
	productRepo.EXPECT().Count(ctx, repository.ProductFilter{}).Return(int64(120), nil)
	productRepo.EXPECT().Count(ctx, repository.ProductFilter{Status: &productPending}).Return(int64(7), nil)
	categoryRepo.EXPECT().Count(ctx).Return(int64(9), nil)
	orderRepo.EXPECT().Count(ctx, repository.OrderFilter{}).Return(int64(55), nil)
	orderRepo.EXPECT().Count(ctx, repository.OrderFilter{Status: &orderPending}).Return(int64(4), nil)
	orderRepo.EXPECT().SumTotal(ctx, repository.OrderFilter{Status: &orderDelivered}).Return(152500.0, nil)

	srv := NewStatsService(StatsServiceParams{
		UserRepo:     userRepo,
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		OrderRepo:    orderRepo,
		Logger:       newDiscardLogger(),
	})

	stats, err := srv.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		TotalUsers:       40,
		TotalProducts:    120,
		TotalCategories:  9,
		PendingProducts:  7,
		PendingMerchants: 2,
		TotalOrders:      55,
		PendingOrders:    4,
		TotalRevenue:     152500,
	}, stats)
}

func TestStatsService_GetStats_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(0), errors.New("db down"))

	srv := NewStatsService(StatsServiceParams{
		UserRepo:     userRepo,
		ProductRepo:  mockRepo.NewMockProductRepository(t),
		CategoryRepo: mockRepo.NewMockCategoryRepository(t),
		OrderRepo:    mockRepo.NewMockOrderRepository(t),
		Logger:       newDiscardLogger(),
	})

	_, err := srv.GetStats(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count users")
}
