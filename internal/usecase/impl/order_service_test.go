package impl

import (
	"context"
	"testing"
	"time"

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

type orderServiceFixtures struct {
	service     *orderService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	txOrderRepo *mockRepo.MockOrderRepository
	txProducts  *mockRepo.MockProductRepository
	notifier    *mockSvc.MockNotificationService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	srv := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Sanitizer: sanitize.NewTextSanitizer(),
		Notifier:  notifier,
		Logger:    newDiscardLogger(),
	}).(*orderService)
	srv.now = func() time.Time { return fixedNow }

	return orderServiceFixtures{
		service:     srv,
		txManager:   txManager,
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		txOrderRepo: mockRepo.NewMockOrderRepository(t),
		txProducts:  mockRepo.NewMockProductRepository(t),
		notifier:    notifier,
	}
}

// inTransaction routes the transaction callback to the fixture's tx-bound repositories.
func (fx orderServiceFixtures) inTransaction(t *testing.T) {
	expectTransaction(t, fx.txManager, fx.factory)
}

func newClientWithAddress() *entity.User {
	client := newClient("+237690000001")
	client.AddAddress(entity.Address{
		ID:          uuid.New(),
		UserID:      client.ID,
		Label:       "Domicile",
		FullAddress: "Rue 12",
		City:        "Douala",
		Quarter:     "Akwa",
	})

	return client
}

func newPendingOrder(clientID uuid.UUID, items ...entity.OrderItem) *entity.Order {
	id := uuid.New()
	for i := range items {
		items[i].OrderID = id
	}
	order := &entity.Order{
		ID:          id,
		OrderNumber: entity.NewOrderNumber(id, fixedNow),
		ClientID:    clientID,
		Items:       items,
		Status:      entity.OrderStatusPending,
		StatusHistory: []entity.OrderStatusChange{
			{ID: uuid.New(), OrderID: id, To: entity.OrderStatusPending, ChangedBy: clientID},
		},
	}
	order.RecalculateTotal()

	return order
}

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots prices and merges duplicate lines", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClientWithAddress()
		product := newProduct(uuid.New(), uuid.New())

		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.inTransaction(t)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.txProducts.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.txProducts.EXPECT().ReserveStock(ctx, product.ID, 3).Return(nil)
		fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

		order, err := fx.service.Place(ctx, client.ID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{
				{ProductID: product.ID, Quantity: 1},
				{ProductID: product.ID, Quantity: 2},
			},
			Note: "Sonner <b>deux</b> fois",
		})

		require.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, product.Price, order.Items[0].Price)
		assert.Equal(t, "Savon", order.Items[0].Name)
		assert.InDelta(t, 4500.0, order.TotalAmount, 0.001)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, entity.PaymentMethodCashOnDelivery, order.PaymentMethod)
		assert.Equal(t, "Sonner deux fois", order.Note)
		assert.Equal(t, "Douala", order.DeliveryAddress.City)
		assert.Regexp(t, `^ORD-20260504-[0-9A-F]{6}$`, order.OrderNumber)
		require.Len(t, order.StatusHistory, 1)
		assert.Equal(t, entity.OrderStatusPending, order.StatusHistory[0].To)
	})

	t.Run("insufficient stock creates nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClientWithAddress()
		product := newProduct(uuid.New(), uuid.New())
		product.Stock = 1

		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.inTransaction(t)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
		fx.txProducts.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.Place(ctx, client.ID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		})
		appErr := requireAppErrorCode(t, err, "INSUFFICIENT_STOCK")
		assert.Equal(t, "Stock insuffisant pour Savon", appErr.Message())
	})

	t.Run("lost reservation race", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClientWithAddress()
		product := newProduct(uuid.New(), uuid.New())

		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.inTransaction(t)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
		fx.txProducts.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.txProducts.EXPECT().ReserveStock(ctx, product.ID, 2).Return(repository.ErrInsufficientStock)

		_, err := fx.service.Place(ctx, client.ID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		})
		requireAppErrorCode(t, err, "INSUFFICIENT_STOCK")
	})

	t.Run("unpublished product", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClientWithAddress()
		product := newProduct(uuid.New(), uuid.New())
		product.RequireReview()

		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.inTransaction(t)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
		fx.txProducts.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.Place(ctx, client.ID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidProduct)
	})

	t.Run("only clients may order", func(t *testing.T) {
		fx := createTestOrderService(t)
		merchant := newApprovedMerchant()
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)

		_, err := fx.service.Place(ctx, merchant.ID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})
		requireAppErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("input validation", func(t *testing.T) {
		cases := map[string]struct {
			client *entity.User
			input  usecase.PlaceOrderInput
			code   string
		}{
			"no items": {
				client: newClientWithAddress(),
				input:  usecase.PlaceOrderInput{},
				code:   "VALIDATION_ERROR",
			},
			"zero quantity": {
				client: newClientWithAddress(),
				input:  usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 0}}},
				code:   "VALIDATION_ERROR",
			},
			"missing product id": {
				client: newClientWithAddress(),
				input:  usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{Quantity: 1}}},
				code:   "INVALID_PRODUCT",
			},
			"no address on file": {
				client: newClient("+237690000002"),
				input:  usecase.PlaceOrderInput{Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}},
				code:   "VALIDATION_ERROR",
			},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				fx := createTestOrderService(t)
				fx.userRepo.EXPECT().FindByID(ctx, tc.client.ID).Return(tc.client, nil)

				_, err := fx.service.Place(ctx, tc.client.ID, tc.input)
				requireAppErrorCode(t, err, tc.code)
			})
		}
	})
}

func TestOrderService_CancelMine(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("cancel returns stock and skips deleted products", func(t *testing.T) {
		fx := createTestOrderService(t)
		kept, deleted := uuid.New(), uuid.New()
		order := newPendingOrder(clientID,
			entity.OrderItem{ID: uuid.New(), ProductID: kept, Name: "Savon", Price: 1500, Quantity: 2},
			entity.OrderItem{ID: uuid.New(), ProductID: deleted, Name: "Huile", Price: 2000, Quantity: 1},
		)

		fx.inTransaction(t)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts)
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.txProducts.EXPECT().ReleaseStock(ctx, kept, 2).Return(nil)
		fx.txProducts.EXPECT().ReleaseStock(ctx, deleted, 1).Return(repository.ErrProductNotFound)
		fx.txOrderRepo.EXPECT().
			UpdateStatus(ctx, order, mock.MatchedBy(func(c entity.OrderStatusChange) bool {
				return c.From == entity.OrderStatusPending && c.To == entity.OrderStatusCancelled && c.ChangedBy == clientID
			})).
			Return(nil)

		cancelled, err := fx.service.CancelMine(ctx, clientID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
		assert.Len(t, cancelled.StatusHistory, 2)
	})

	t.Run("terminal orders cannot be cancelled", func(t *testing.T) {
		for _, status := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled, entity.OrderStatusPreparing} {
			t.Run(string(status), func(t *testing.T) {
				fx := createTestOrderService(t)
				order := newPendingOrder(clientID)
				order.Status = status

				fx.inTransaction(t)
				fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
				fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

				_, err := fx.service.CancelMine(ctx, clientID, order.ID)
				appErr := requireAppErrorCode(t, err, "INVALID_TRANSITION")
				assert.Equal(t, status, order.Status)
				if status == entity.OrderStatusPreparing {
					assert.Equal(t, "Statuts possibles: ready, cancelled", appErr.Details())
				} else {
					assert.Equal(t, "La commande est clôturée", appErr.Details())
				}
			})
		}
	})

	t.Run("second cancel on a stale read restocks nothing", func(t *testing.T) {
		fx := createTestOrderService(t)
		productID := uuid.New()
		order := newPendingOrder(clientID,
			entity.OrderItem{ID: uuid.New(), ProductID: productID, Name: "Savon", Price: 1500, Quantity: 3},
		)
		stale := *order
		stale.StatusHistory = append([]entity.OrderStatusChange(nil), order.StatusHistory...)

		expectTransaction(t, fx.txManager, fx.factory)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.factory.EXPECT().NewProductRepository().Return(fx.txProducts).Once()
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Once()
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(&stale, nil).Once()
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order, mock.AnythingOfType("entity.OrderStatusChange")).Return(nil).Once()
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, &stale, mock.AnythingOfType("entity.OrderStatusChange")).
			Return(repository.ErrOrderStatusChanged).Once()
		fx.txProducts.EXPECT().ReleaseStock(ctx, productID, 3).Return(nil).Once()

		_, err := fx.service.CancelMine(ctx, clientID, order.ID)
		require.NoError(t, err)

		_, err = fx.service.CancelMine(ctx, clientID, order.ID)
		requireAppErrorCode(t, err, "INVALID_TRANSITION")
	})

	t.Run("someone else's order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newPendingOrder(uuid.New())

		fx.inTransaction(t)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CancelMine(ctx, clientID, order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_GetMine(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newPendingOrder(uuid.New())
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetMine(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_AdminUpdateStatus(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("assigns courier on pickup and notifies client", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClient("+237690000001")
		client.FCMToken = "client-device"
		courier := newClient("+237690000009")
		courier.ChangeRole(entity.RoleDelivery)
		order := newPendingOrder(client.ID)
		order.Status = entity.OrderStatusReady

		fx.userRepo.EXPECT().FindByID(ctx, courier.ID).Return(courier, nil)
		fx.inTransaction(t)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order, mock.AnythingOfType("entity.OrderStatusChange")).Return(nil)
		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.notifier.EXPECT().
			SendSingleNotification(ctx, "client-device", "Commande "+order.OrderNumber, mock.Anything, mock.Anything).
			Return(nil)

		updated, err := fx.service.AdminUpdateStatus(ctx, adminID, order.ID, usecase.UpdateOrderStatusInput{
			Status:     entity.OrderStatusPicked,
			Note:       "Livreur en route",
			DeliveryID: &courier.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPicked, updated.Status)
		require.NotNil(t, updated.DeliveryID)
		assert.Equal(t, courier.ID, *updated.DeliveryID)
		last := updated.StatusHistory[len(updated.StatusHistory)-1]
		assert.Equal(t, adminID, last.ChangedBy)
		assert.Equal(t, "Livreur en route", last.Note)
	})

	t.Run("courier only on pickup", func(t *testing.T) {
		fx := createTestOrderService(t)
		courierID := uuid.New()

		_, err := fx.service.AdminUpdateStatus(ctx, adminID, uuid.New(), usecase.UpdateOrderStatusInput{
			Status:     entity.OrderStatusConfirmed,
			DeliveryID: &courierID,
		})
		requireAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("courier must be a delivery user", func(t *testing.T) {
		fx := createTestOrderService(t)
		client := newClient("+237690000001")
		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		_, err := fx.service.AdminUpdateStatus(ctx, adminID, uuid.New(), usecase.UpdateOrderStatusInput{
			Status:     entity.OrderStatusPicked,
			DeliveryID: &client.ID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrNotADeliveryUser)
	})

	t.Run("skipping steps is refused", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newPendingOrder(uuid.New())

		fx.inTransaction(t)
		fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo)
		fx.txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.AdminUpdateStatus(ctx, adminID, order.ID, usecase.UpdateOrderStatusInput{
			Status: entity.OrderStatusDelivered,
		})
		appErr := requireAppErrorCode(t, err, "INVALID_TRANSITION")
		assert.Equal(t, "Transition de statut invalide: pending → delivered", appErr.Message())
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.AdminUpdateStatus(ctx, adminID, uuid.New(), usecase.UpdateOrderStatusInput{Status: "shipped"})
		requireAppErrorCode(t, err, "VALIDATION_ERROR")
	})
}

func TestOrderService_AdminList(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	delivered := entity.OrderStatusDelivered

	fx.orderRepo.EXPECT().List(ctx, repository.OrderFilter{}).Return([]*entity.Order{}, nil).Twice()
	fx.orderRepo.EXPECT().List(ctx, repository.OrderFilter{Status: &delivered}).Return([]*entity.Order{}, nil).Once()

	for _, status := range []string{"", "all", "delivered"} {
		_, err := fx.service.AdminList(ctx, status)
		require.NoError(t, err)
	}

	_, err := fx.service.AdminList(ctx, "shipped")
	requireAppErrorCode(t, err, "VALIDATION_ERROR")
}
