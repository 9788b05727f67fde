package usecase

import (
	"context"

	"market/internal/domain/entity"
)

// StatsUsecase computes the admin dashboard counters.
type StatsUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
