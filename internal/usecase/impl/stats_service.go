package impl

import (
	"context"
	"log/slog"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:     params.UserRepo,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

// GetStats computes the dashboard counters. Revenue only counts delivered orders.
func (srv *statsService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	var err error

	merchant, notApproved := entity.RoleMerchant, false
	productPending := entity.ProductStatusPending
	orderPending, orderDelivered := entity.OrderStatusPending, entity.OrderStatusDelivered

	if stats.TotalUsers, err = srv.userRepo.Count(ctx, repository.UserFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if stats.PendingMerchants, err = srv.userRepo.Count(ctx, repository.UserFilter{Role: &merchant, Approved: &notApproved}); err != nil {
		return nil, errors.Wrap(err, "failed to count pending merchants")
	}
	if stats.TotalProducts, err = srv.productRepo.Count(ctx, repository.ProductFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if stats.PendingProducts, err = srv.productRepo.Count(ctx, repository.ProductFilter{Status: &productPending}); err != nil {
		return nil, errors.Wrap(err, "failed to count pending products")
	}
	if stats.TotalCategories, err = srv.categoryRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}
	if stats.TotalOrders, err = srv.orderRepo.Count(ctx, repository.OrderFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	if stats.PendingOrders, err = srv.orderRepo.Count(ctx, repository.OrderFilter{Status: &orderPending}); err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}
	if stats.TotalRevenue, err = srv.orderRepo.SumTotal(ctx, repository.OrderFilter{Status: &orderDelivered}); err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard stats computed",
		slog.Int64("users", stats.TotalUsers),
		slog.Int64("orders", stats.TotalOrders),
	)

	return &stats, nil
}
