package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func withOrderDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("History", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		})
}

// Create persists an order with its items and history in one statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	for i := range order.StatusHistory {
		if order.StatusHistory[i].ID == uuid.Nil {
			order.StatusHistory[i].ID = uuid.New()
		}
		order.StatusHistory[i].OrderID = order.ID
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, nil, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.StatusHistory {
		order.StatusHistory[i].CreatedAt = orderM.History[i].CreatedAt
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := withOrderDetails(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching filter, newest first, with items and history loaded.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := withOrderDetails(applyOrderFilter(repo.db.WithContext(ctx), filter)).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderMs), nil
}

func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	if err := applyOrderFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) SumTotal(ctx context.Context, filter repository.OrderFilter) (float64, error) {
	var total float64
	err := applyOrderFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum order totals")
	}

	return total, nil
}

func applyOrderFilter(db *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	if filter.ClientID != nil {
		db = db.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}

	return db
}

// UpdateStatus saves the status and delivery assignment and appends change to the history.
// The update is guarded by change.From; a concurrent writer that already moved the
// order makes it affect no row.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order, change entity.OrderStatusChange) error {
	if change.ID == uuid.Nil {
		change.ID = uuid.New()
	}
	changeM := fromOrderStatusChangeDomain(order.ID, change)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ? AND status = ?", order.ID, string(change.From)).
			Updates(map[string]any{
				"status":      string(order.Status),
				"delivery_id": order.DeliveryID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.OrderModel{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return repository.ErrOrderNotFound
			}

			return repository.ErrOrderStatusChanged
		}

		return tx.Create(&changeM).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) || errors.Is(err, repository.ErrOrderStatusChanged) {
			return err
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}
