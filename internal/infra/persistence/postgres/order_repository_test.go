package postgres

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(clientID uuid.UUID, createdAt time.Time, amount float64) *entity.Order {
	order := &entity.Order{
		ID:            uuid.New(),
		ClientID:      clientID,
		PaymentMethod: entity.PaymentMethodCashOnDelivery,
		Status:        entity.OrderStatusPending,
		DeliveryAddress: entity.OrderAddress{
			Label:       "Domicile",
			FullAddress: "Rue 1",
			City:        "Douala",
		},
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), MerchantID: uuid.New(), Name: "Riz", Price: amount, Quantity: 1},
		},
		CreatedAt: createdAt,
	}
	order.OrderNumber = entity.NewOrderNumber(order.ID, createdAt)
	order.RecalculateTotal()
	order.StatusHistory = []entity.OrderStatusChange{{To: entity.OrderStatusPending, ChangedBy: clientID, CreatedAt: createdAt}}

	return order
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	clientID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newTestOrder(clientID, base, 1000)
	newer := newTestOrder(clientID, base.Add(time.Hour), 2500)
	other := newTestOrder(uuid.New(), base.Add(2*time.Hour), 4000)
	for _, o := range []*entity.Order{older, newer, other} {
		require.NoError(t, repo.Create(ctx, o))
	}

	found, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.OrderNumber, found.OrderNumber)
	assert.Equal(t, "Douala", found.DeliveryAddress.City)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Riz", found.Items[0].Name)
	require.Len(t, found.StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusPending, found.StatusHistory[0].To)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	mine, err := repo.List(ctx, repository.OrderFilter{ClientID: &clientID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)

	adminID := uuid.New()
	require.True(t, found.Transition(entity.OrderStatusConfirmed, entity.OrderActorAdmin, adminID, "ok", base.Add(3*time.Hour)))
	change := found.StatusHistory[len(found.StatusHistory)-1]
	require.NoError(t, repo.UpdateStatus(ctx, found, change))

	updated, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, entity.OrderStatusPending, updated.StatusHistory[1].From)
	assert.Equal(t, adminID, updated.StatusHistory[1].ChangedBy)

	pending := entity.OrderStatusPending
	count, err := repo.Count(ctx, repository.OrderFilter{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := repo.SumTotal(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.InDelta(t, 7500.0, total, 0.001)

	ghost := newTestOrder(clientID, base, 10)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, ghost, entity.OrderStatusChange{To: entity.OrderStatusCancelled}), repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateStatus_StaleRead(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	clientID := uuid.New()
	order := newTestOrder(clientID, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 1000)
	require.NoError(t, repo.Create(ctx, order))

	// Both callers read the order while it is still pending.
	byClient, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	byAdmin, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	require.True(t, byClient.Transition(entity.OrderStatusCancelled, entity.OrderActorClient, clientID, "", now))
	require.NoError(t, repo.UpdateStatus(ctx, byClient, byClient.StatusHistory[len(byClient.StatusHistory)-1]))

	require.True(t, byAdmin.Transition(entity.OrderStatusRejected, entity.OrderActorAdmin, uuid.New(), "", now))
	err = repo.UpdateStatus(ctx, byAdmin, byAdmin.StatusHistory[len(byAdmin.StatusHistory)-1])
	assert.ErrorIs(t, err, repository.ErrOrderStatusChanged)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, stored.Status)
	assert.Len(t, stored.StatusHistory, 2, "the losing change leaves no history entry")
}
