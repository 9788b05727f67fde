package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	sanitizer service.TextSanitizer
	notifier  service.NotificationService
	now       func() time.Time
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Sanitizer service.TextSanitizer
	Notifier  service.NotificationService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		sanitizer: params.Sanitizer,
		notifier:  params.Notifier,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place creates an order in a single transaction: prices are snapshotted and
// stock is reserved line by line, so any failing line rolls back the whole order.
func (srv *orderService) Place(ctx context.Context, clientID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	client, err := srv.userRepo.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find client")
	}
	if client.Role != entity.RoleClient {
		return nil, domainerrors.ErrForbidden.WithMessage("Seuls les clients peuvent passer des commandes")
	}

	lines, err := mergeOrderLines(input.Items)
	if err != nil {
		return nil, err
	}

	address, err := resolveDeliveryAddress(client, input.Address)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	order := &entity.Order{
		ID:              uuid.New(),
		ClientID:        client.ID,
		DeliveryAddress: address,
		Note:            srv.sanitizer.Sanitize(input.Note),
		PaymentMethod:   entity.PaymentMethodCashOnDelivery,
		Status:          entity.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.OrderNumber = entity.NewOrderNumber(order.ID, now)
	order.StatusHistory = []entity.OrderStatusChange{{
		ID:        uuid.New(),
		OrderID:   order.ID,
		To:        entity.OrderStatusPending,
		ChangedBy: client.ID,
		CreatedAt: now,
	}}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		for _, line := range lines {
			item, err := reserveLine(ctx, productRepo, line)
			if err != nil {
				return err
			}
			item.OrderID = order.ID
			order.Items = append(order.Items, item)
		}
		order.RecalculateTotal()

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.String("clientID", client.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("orderNumber", order.OrderNumber),
		slog.Float64("total", order.TotalAmount),
	)

	return order, nil
}

func (srv *orderService) ListMine(ctx context.Context, clientID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{ClientID: &clientID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client orders")
	}

	return orders, nil
}

func (srv *orderService) GetMine(ctx context.Context, clientID, id uuid.UUID) (*entity.Order, error) {
	order, err := findOrder(ctx, srv.orderRepo, id)
	if err != nil {
		return nil, err
	}
	if order.ClientID != clientID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// CancelMine cancels a client's own order while it is still pending or confirmed.
func (srv *orderService) CancelMine(ctx context.Context, clientID, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, err := findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}
		if found.ClientID != clientID {
			return domainerrors.ErrOrderNotFound
		}

		order = found

		return srv.transition(ctx, repoFactory, order, entity.OrderStatusCancelled, entity.OrderActorClient, clientID, "")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel order transaction")
	}

	srv.log(ctx).Info("Order cancelled by client", slog.String("orderID", order.ID.String()))

	return order, nil
}

// AdminList returns every order newest first. An empty status disables the filter.
func (srv *orderService) AdminList(ctx context.Context, status string) ([]*entity.Order, error) {
	filter := repository.OrderFilter{}

	status = strings.TrimSpace(status)
	if status != "" && status != roleFilterAll {
		s := entity.OrderStatus(status)
		if !s.IsValid() {
			return nil, domainerrors.NewValidationError("Statut de commande invalide")
		}
		filter.Status = &s
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) AdminGet(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return findOrder(ctx, srv.orderRepo, id)
}

// AdminUpdateStatus moves an order along the workflow. Cancelling or
// rejecting returns the reserved stock in the same transaction.
func (srv *orderService) AdminUpdateStatus(ctx context.Context, actorID, id uuid.UUID, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError("Statut de commande invalide")
	}
	if input.DeliveryID != nil {
		if input.Status != entity.OrderStatusPicked {
			return nil, domainerrors.NewValidationError("Un livreur ne peut être assigné qu'au ramassage de la commande")
		}
		if err := srv.ensureDeliveryUser(ctx, *input.DeliveryID); err != nil {
			return nil, err
		}
	}

	note := srv.sanitizer.Sanitize(input.Note)

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), id)
		if err != nil {
			return err
		}

		order = found
		if input.DeliveryID != nil {
			deliveryID := *input.DeliveryID
			order.DeliveryID = &deliveryID
		}

		return srv.transition(ctx, repoFactory, order, input.Status, entity.OrderActorAdmin, actorID, note)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", order.ID.String()),
		slog.String("status", string(order.Status)),
	)
	srv.notifyClient(ctx, order)

	return order, nil
}

// transition applies the status change and persists it together with its
// history entry, then restocks when required. The write is conditional on the
// status read in this transaction, so a concurrent change wins exactly once.
func (srv *orderService) transition(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	order *entity.Order,
	to entity.OrderStatus,
	actor entity.OrderActor,
	changedBy uuid.UUID,
	note string,
) error {
	from := order.Status
	if !order.Transition(to, actor, changedBy, note, srv.now()) {
		return transitionRefused(from, to)
	}

	change := order.StatusHistory[len(order.StatusHistory)-1]
	if err := repoFactory.NewOrderRepository().UpdateStatus(ctx, order, change); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return domainerrors.ErrOrderNotFound
		case errors.Is(err, repository.ErrOrderStatusChanged):
			return domainerrors.NewInvalidTransitionError(string(from), string(to)).
				WithDetails("Le statut de la commande a changé entre-temps")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	if !to.ReleasesStock() {
		return nil
	}

	productRepo := repoFactory.NewProductRepository()
	for _, item := range order.Items {
		err := productRepo.ReleaseStock(ctx, item.ProductID, item.Quantity)
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Debug("Restock skipped for deleted product", slog.String("productID", item.ProductID.String()))

			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to release stock")
		}
	}

	return nil
}

// transitionRefused names the statuses still reachable from the current one.
func transitionRefused(from, to entity.OrderStatus) error {
	refused := domainerrors.NewInvalidTransitionError(string(from), string(to))
	if from.IsTerminal() {
		return refused.WithDetails("La commande est clôturée")
	}

	next := entity.NextOrderStatuses(from)
	names := make([]string, len(next))
	for i, status := range next {
		names[i] = string(status)
	}

	return refused.WithDetails("Statuts possibles: " + strings.Join(names, ", "))
}

func (srv *orderService) ensureDeliveryUser(ctx context.Context, id uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotADeliveryUser
		}

		return errors.Wrap(err, "failed to find delivery user")
	}
	if user.Role != entity.RoleDelivery {
		return domainerrors.ErrNotADeliveryUser
	}

	return nil
}

func (srv *orderService) notifyClient(ctx context.Context, order *entity.Order) {
	client, err := srv.userRepo.FindByID(ctx, order.ClientID)
	if err != nil {
		srv.log(ctx).Debug("Client not notified", slog.String("orderID", order.ID.String()), slog.Any("error", err))

		return
	}

	pushToUser(ctx, srv.log(ctx), srv.notifier, client,
		fmt.Sprintf("Commande %s", order.OrderNumber),
		fmt.Sprintf("Statut de votre commande: %s", order.Status),
		map[string]string{
			"type":    "order_status",
			"orderId": order.ID.String(),
			"status":  string(order.Status),
		},
	)
}

func findOrder(ctx context.Context, orderRepo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// reserveLine checks that the product can be sold and takes the stock.
func reserveLine(ctx context.Context, productRepo repository.ProductRepository, line usecase.OrderItemInput) (entity.OrderItem, error) {
	product, err := productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.OrderItem{}, domainerrors.ErrInvalidProduct
		}

		return entity.OrderItem{}, errors.Wrap(err, "failed to find product")
	}
	if !product.IsPubliclyVisible() {
		return entity.OrderItem{}, domainerrors.ErrInvalidProduct
	}
	if product.Stock < line.Quantity {
		return entity.OrderItem{}, domainerrors.NewInsufficientStockError(product.Name)
	}

	if err := productRepo.ReserveStock(ctx, product.ID, line.Quantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return entity.OrderItem{}, domainerrors.NewInsufficientStockError(product.Name)
		case errors.Is(err, repository.ErrProductNotFound):
			return entity.OrderItem{}, domainerrors.ErrInvalidProduct
		}

		return entity.OrderItem{}, errors.Wrap(err, "failed to reserve stock")
	}

	return entity.OrderItem{
		ID:         uuid.New(),
		ProductID:  product.ID,
		MerchantID: product.MerchantID,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   line.Quantity,
	}, nil
}

// mergeOrderLines validates the requested lines and folds repeated products
// into one line, keeping the first-seen order.
func mergeOrderLines(items []usecase.OrderItemInput) ([]usecase.OrderItemInput, error) {
	if len(items) == 0 {
		return nil, domainerrors.NewValidationError("La commande doit contenir au moins un article")
	}

	merged := make([]usecase.OrderItemInput, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, domainerrors.ErrInvalidProduct
		}
		if item.Quantity < 1 {
			return nil, domainerrors.NewValidationError("La quantité doit être au moins 1")
		}

		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity

			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged, nil
}

// resolveDeliveryAddress uses the supplied address or falls back to the
// client's default address.
func resolveDeliveryAddress(client *entity.User, input *usecase.AddressInput) (entity.OrderAddress, error) {
	if input == nil {
		def := client.DefaultAddress()
		if def == nil {
			return entity.OrderAddress{}, domainerrors.NewValidationError("Adresse de livraison requise")
		}

		return entity.OrderAddress{
			Label:       def.Label,
			FullAddress: def.FullAddress,
			City:        def.City,
			Quarter:     def.Quarter,
			Details:     def.Details,
		}, nil
	}

	addr, err := buildAddress(client.ID, *input)
	if err != nil {
		return entity.OrderAddress{}, err
	}

	return entity.OrderAddress{
		Label:       addr.Label,
		FullAddress: addr.FullAddress,
		City:        addr.City,
		Quarter:     addr.Quarter,
		Details:     addr.Details,
	}, nil
}
