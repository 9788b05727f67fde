package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/config"
	deliveryhttp "market/internal/delivery/http"
	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/response"
	"market/internal/delivery/http/router"
	"market/internal/delivery/http/router/handler"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	mockusecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

type apiFixture struct {
	e           *echo.Echo
	authUC      *mockusecase.MockAuthUsecase
	userAdminUC *mockusecase.MockUserAdminUsecase
	statsUC     *mockusecase.MockStatsUsecase
	productUC   *mockusecase.MockProductUsecase
	categoryUC  *mockusecase.MockCategoryUsecase
	orderUC     *mockusecase.MockOrderUsecase
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	f := &apiFixture{
		e:           deliveryhttp.NewEcho(cfg, logger),
		authUC:      mockusecase.NewMockAuthUsecase(t),
		userAdminUC: mockusecase.NewMockUserAdminUsecase(t),
		statsUC:     mockusecase.NewMockStatsUsecase(t),
		productUC:   mockusecase.NewMockProductUsecase(t),
		categoryUC:  mockusecase.NewMockCategoryUsecase(t),
		orderUC:     mockusecase.NewMockOrderUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
		UserAdminHandler: handler.NewUserAdminHandler(handler.UserAdminHandlerParams{UserAdminUC: f.userAdminUC, Logger: logger}),
		StatsHandler:     handler.NewStatsHandler(f.statsUC),
		ProductHandler:   handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.productUC, Logger: logger}),
		CategoryHandler:  handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: f.categoryUC, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.orderUC, Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: f.authUC, Logger: logger}),
	}).RegisterRoutes(f.e)

	return f
}

// signIn makes token resolve to a fresh active user with role.
func (f *apiFixture) signIn(role entity.Role) (string, uuid.UUID) {
	id := uuid.New()
	token := "token-" + role.String()
	f.authUC.EXPECT().Authenticate(mock.Anything, token).
		Return(&entity.User{ID: id, Role: role, IsActive: true}, nil)

	return token, id
}

func (f *apiFixture) do(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	f.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func assertError(t *testing.T, env envelope, status int, code, message string) {
	t.Helper()

	assert.False(t, env.Success)
	assert.Equal(t, status, env.Code)
	assert.Equal(t, message, env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	f := newAPI(t)

	status, env := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, env))
}

func TestAuthRoutes(t *testing.T) {
	t.Run("register returns token and public profile", func(t *testing.T) {
		f := newAPI(t)
		userID := uuid.New()
		f.authUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Phone:    "+237650000001",
			Password: "secret1",
			Name:     "Awa",
			Email:    "awa@example.com",
			Role:     "admin",
		}).Return(&usecase.AuthOutput{
			Token: "signed",
			User: &entity.User{
				ID:           userID,
				Phone:        "+237650000001",
				PasswordHash: "$2a$10$hash",
				Name:         "Awa",
				Email:        "awa@example.com",
				Role:         entity.RoleClient,
				IsActive:     true,
			},
		}, nil)

		status, env := f.do(t, http.MethodPost, "/api/auth/register", "",
			`{"phone":"+237650000001","password":"secret1","name":"Awa","email":"awa@example.com","role":"admin"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Inscription réussie", env.Message)
		out := decodeData[handler.AuthResponse](t, env)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, userID, out.User.ID)
		assert.Equal(t, "client", out.User.Role)
		assert.True(t, out.User.IsActive)
		assert.NotContains(t, string(env.Data), "hash")
	})

	t.Run("login failure keeps the credential message", func(t *testing.T) {
		f := newAPI(t)
		f.authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Phone: "+237650000001", Password: "wrong"}).
			Return(nil, domainerrors.ErrInvalidCredentials)

		status, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"phone":"+237650000001","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, status)
		assertError(t, env, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Identifiants invalides")
	})

	t.Run("malformed json", func(t *testing.T) {
		f := newAPI(t)

		status, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"phone":`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "Données invalides")
	})

	t.Run("me requires a token", func(t *testing.T) {
		f := newAPI(t)
		f.authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

		status, env := f.do(t, http.MethodGet, "/api/auth/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, status)
		assertError(t, env, http.StatusUnauthorized, "UNAUTHORIZED", "Non autorisé, token manquant")
	})

	t.Run("me returns the current user", func(t *testing.T) {
		f := newAPI(t)
		token, userID := f.signIn(entity.RoleMerchant)
		f.authUC.EXPECT().GetMe(mock.Anything, userID).Return(&entity.User{
			ID:       userID,
			Name:     "Boutique",
			Role:     entity.RoleMerchant,
			IsActive: true,
			Merchant: &entity.MerchantProfile{UserID: userID, ShopName: "Chez Jean", IsApproved: true},
		}, nil)

		status, env := f.do(t, http.MethodGet, "/api/auth/me", token, "")

		assert.Equal(t, http.StatusOK, status)
		out := decodeData[map[string]handler.UserResponse](t, env)
		assert.Equal(t, "Chez Jean", out["user"].ShopName)
		assert.True(t, out["user"].IsApproved)
	})

	t.Run("add address", func(t *testing.T) {
		f := newAPI(t)
		token, userID := f.signIn(entity.RoleClient)
		f.authUC.EXPECT().AddAddress(mock.Anything, userID, usecase.AddressInput{
			FullAddress: "Rue 12",
			City:        "Douala",
			IsDefault:   true,
		}).Return([]entity.Address{
			{ID: uuid.New(), Label: entity.DefaultAddressLabel, FullAddress: "Rue 12", City: "Douala", IsDefault: true},
		}, nil)

		status, env := f.do(t, http.MethodPost, "/api/auth/addresses", token,
			`{"fullAddress":"Rue 12","city":"Douala","isDefault":true}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Adresse ajoutée avec succès", env.Message)
		out := decodeData[map[string][]handler.AddressResponse](t, env)
		require.Len(t, out["addresses"], 1)
		assert.True(t, out["addresses"][0].IsDefault)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("client is refused", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleClient)

		status, env := f.do(t, http.MethodGet, "/api/admin/users", token, "")

		assert.Equal(t, http.StatusForbidden, status)
		assertError(t, env, http.StatusForbidden, "FORBIDDEN", "Accès refusé")
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)

		status, env := f.do(t, http.MethodGet, "/api/admin/users/not-a-uuid", token, "")

		assert.Equal(t, http.StatusNotFound, status)
		assertError(t, env, http.StatusNotFound, "NOT_FOUND", "Ressource non trouvée")
	})

	t.Run("list users by role", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)
		f.userAdminUC.EXPECT().ListUsers(mock.Anything, "merchant").Return([]*entity.User{
			{ID: uuid.New(), Name: "A", Role: entity.RoleMerchant, Merchant: &entity.MerchantProfile{}},
			{ID: uuid.New(), Name: "B", Role: entity.RoleMerchant, Merchant: &entity.MerchantProfile{}},
		}, nil)

		status, env := f.do(t, http.MethodGet, "/api/admin/users?role=merchant", token, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, decodeData[map[string][]handler.UserResponse](t, env)["users"], 2)
	})

	t.Run("toggle status message follows the new state", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)
		userID := uuid.New()
		f.userAdminUC.EXPECT().ToggleUserStatus(mock.Anything, userID).
			Return(&entity.User{ID: userID, Role: entity.RoleClient, IsActive: false}, nil)

		status, env := f.do(t, http.MethodPut, "/api/admin/users/"+userID.String()+"/toggle-status", token, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Utilisateur désactivé", env.Message)
	})

	t.Run("invalid role is rejected before the use case", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)

		status, env := f.do(t, http.MethodPost, "/api/admin/users", token,
			`{"name":"X","phone":"+237650000002","password":"secret1","role":"root"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR",
			"role doit être l'une des valeurs: client merchant delivery admin")
	})

	t.Run("stats are flat", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)
		f.statsUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{
			TotalUsers:   12,
			TotalOrders:  4,
			TotalRevenue: 45000,
		}, nil)

		status, env := f.do(t, http.MethodGet, "/api/admin/stats", token, "")

		assert.Equal(t, http.StatusOK, status)
		out := decodeData[handler.StatsResponse](t, env)
		assert.Equal(t, int64(12), out.TotalUsers)
		assert.Equal(t, int64(4), out.TotalOrders)
		assert.InDelta(t, 45000, out.TotalRevenue, 0.001)
	})

	t.Run("category in use", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)
		categoryID := uuid.New()
		f.categoryUC.EXPECT().Delete(mock.Anything, categoryID).Return(domainerrors.NewCategoryInUseError(3))

		status, env := f.do(t, http.MethodDelete, "/api/admin/categories/"+categoryID.String(), token, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "CATEGORY_IN_USE",
			"Impossible de supprimer: 3 produit(s) utilisent cette catégorie")
	})

	t.Run("reject product with reason", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)
		productID := uuid.New()
		f.productUC.EXPECT().Reject(mock.Anything, productID, "Photo floue").Return(&entity.Product{
			ID:              productID,
			Status:          entity.ProductStatusRejected,
			RejectionReason: "Photo floue",
		}, nil)

		status, env := f.do(t, http.MethodPut, "/api/admin/products/"+productID.String()+"/reject", token,
			`{"reason":"Photo floue"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Produit rejeté", env.Message)
		out := decodeData[map[string]handler.ProductResponse](t, env)
		assert.Equal(t, "rejected", out["product"].Status)
		assert.False(t, out["product"].IsApproved)
	})

	t.Run("assign courier when picking up", func(t *testing.T) {
		f := newAPI(t)
		token, adminID := f.signIn(entity.RoleAdmin)
		orderID, courierID := uuid.New(), uuid.New()
		f.orderUC.EXPECT().AdminUpdateStatus(mock.Anything, adminID, orderID, usecase.UpdateOrderStatusInput{
			Status:     entity.OrderStatusPicked,
			Note:       "Parti",
			DeliveryID: &courierID,
		}).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPicked, DeliveryID: &courierID}, nil)

		status, env := f.do(t, http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", token,
			`{"status":"picked","note":"Parti","delivery":"`+courierID.String()+`"}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Statut de la commande mis à jour", env.Message)
		out := decodeData[map[string]handler.OrderResponse](t, env)
		require.NotNil(t, out["order"].Delivery)
		assert.Equal(t, courierID, *out["order"].Delivery)
	})

	t.Run("status is required", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleAdmin)

		status, env := f.do(t, http.MethodPut, "/api/admin/orders/"+uuid.NewString()+"/status", token, `{"note":"?"}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "status est requis")
	})
}

func TestProductRoutes(t *testing.T) {
	t.Run("public list parses the query", func(t *testing.T) {
		f := newAPI(t)
		categoryID := uuid.New()
		minPrice := 100.0
		f.productUC.EXPECT().PublicList(mock.Anything, usecase.PublicProductQuery{
			CategoryID: &categoryID,
			Search:     "savon",
			MinPrice:   &minPrice,
			Sort:       "price_asc",
			Page:       entity.PageRequest{Page: 2, Limit: 5},
		}).Return(&usecase.ProductPage{
			Products: []*entity.ProductView{
				{Product: entity.Product{ID: uuid.New(), Name: "Savon"}, CategoryName: "Hygiène", MerchantName: "Chez Jean"},
			},
			Pagination: entity.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
		}, nil)

		status, env := f.do(t, http.MethodGet,
			"/api/products?page=2&limit=5&sort=price_asc&minPrice=100&search=savon&category="+categoryID.String(), "", "")

		assert.Equal(t, http.StatusOK, status)
		out := decodeData[handler.ProductPageResponse](t, env)
		assert.Equal(t, entity.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, out.Pagination)
		require.Len(t, out.Products, 1)
		assert.Equal(t, "Hygiène", out.Products[0].CategoryName)
		assert.Equal(t, "Chez Jean", out.Products[0].MerchantName)
		assert.Equal(t, []string{}, out.Products[0].Tags)
	})

	t.Run("non numeric page", func(t *testing.T) {
		f := newAPI(t)

		status, env := f.do(t, http.MethodGet, "/api/products?page=abc", "", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "Paramètre invalide: page")
	})

	t.Run("malformed category filter", func(t *testing.T) {
		f := newAPI(t)

		status, env := f.do(t, http.MethodGet, "/api/products?category=abc", "", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "Identifiant invalide: category")
	})

	t.Run("non finite price bounds", func(t *testing.T) {
		for _, query := range []string{"minPrice=NaN", "maxPrice=Inf", "maxPrice=-Infinity", "minPrice=1e999"} {
			t.Run(query, func(t *testing.T) {
				f := newAPI(t)
				name, _, _ := strings.Cut(query, "=")

				status, env := f.do(t, http.MethodGet, "/api/products?"+query, "", "")

				assert.Equal(t, http.StatusBadRequest, status)
				assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "Nombre invalide: "+name)
			})
		}
	})

	t.Run("public get hides unpublished products", func(t *testing.T) {
		f := newAPI(t)
		productID := uuid.New()
		f.productUC.EXPECT().PublicGet(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

		status, env := f.do(t, http.MethodGet, "/api/products/"+productID.String(), "", "")

		assert.Equal(t, http.StatusNotFound, status)
		assertError(t, env, http.StatusNotFound, domainerrors.ErrProductNotFound.ErrorCode(), "Produit introuvable")
	})

	t.Run("my-products is not read as a product id", func(t *testing.T) {
		f := newAPI(t)
		token, merchantID := f.signIn(entity.RoleMerchant)
		f.productUC.EXPECT().MerchantList(mock.Anything, merchantID, usecase.MerchantProductQuery{Status: "pending"}).
			Return([]*entity.ProductView{}, nil)

		status, env := f.do(t, http.MethodGet, "/api/products/merchant/my-products?status=pending", token, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Empty(t, decodeData[map[string][]handler.ProductResponse](t, env)["products"])
	})

	t.Run("unapproved merchant cannot create", func(t *testing.T) {
		f := newAPI(t)
		token, merchantID := f.signIn(entity.RoleMerchant)
		f.productUC.EXPECT().MerchantCreate(mock.Anything, merchantID, mock.MatchedBy(func(in usecase.ProductInput) bool {
			return in.Name != nil && *in.Name == "Savon" && in.Price != nil && *in.Price == 1500
		})).Return(nil, domainerrors.ErrMerchantNotApproved)

		status, env := f.do(t, http.MethodPost, "/api/products/merchant", token,
			`{"name":"Savon","description":"Savon noir","price":1500,"category":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusForbidden, status)
		assertError(t, env, http.StatusForbidden, "MERCHANT_NOT_APPROVED",
			"Votre compte marchand doit être approuvé pour ajouter des produits")
	})

	t.Run("client cannot reach merchant routes", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleClient)

		status, env := f.do(t, http.MethodDelete, "/api/products/merchant/"+uuid.NewString(), token, "")

		assert.Equal(t, http.StatusForbidden, status)
		assertError(t, env, http.StatusForbidden, "FORBIDDEN", "Accès refusé")
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleMerchant)

		status, env := f.do(t, http.MethodPut, "/api/products/merchant/"+uuid.NewString(), token, `{"stock":-1}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "stock doit être supérieur ou égal à 0")
	})
}

func TestCategoryRoutes(t *testing.T) {
	f := newAPI(t)
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	f.categoryUC.EXPECT().List(mock.Anything, true).Return([]*entity.Category{
		{ID: uuid.New(), Name: "Hygiène", Order: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}, nil)

	status, env := f.do(t, http.MethodGet, "/api/categories", "", "")

	assert.Equal(t, http.StatusOK, status)
	out := decodeData[map[string][]handler.CategoryResponse](t, env)
	require.Len(t, out["categories"], 1)
	assert.Equal(t, "Hygiène", out["categories"][0].Name)
}

func TestOrderRoutes(t *testing.T) {
	t.Run("place order", func(t *testing.T) {
		f := newAPI(t)
		token, clientID := f.signIn(entity.RoleClient)
		productID := uuid.New()
		f.orderUC.EXPECT().Place(mock.Anything, clientID, usecase.PlaceOrderInput{
			Items: []usecase.OrderItemInput{{ProductID: productID, Quantity: 2}},
			Address: &usecase.AddressInput{
				FullAddress: "Rue 12",
				City:        "Douala",
			},
			Note: "Sonner deux fois",
		}).Return(&entity.Order{
			ID:          uuid.New(),
			OrderNumber: "ORD-20260504-ABC123",
			ClientID:    clientID,
			Items:       []entity.OrderItem{{ProductID: productID, Name: "Savon", Price: 1500, Quantity: 2}},
			TotalAmount: 3000,
			Status:      entity.OrderStatusPending,
		}, nil)

		status, env := f.do(t, http.MethodPost, "/api/orders", token,
			`{"items":[{"product":"`+productID.String()+`","quantity":2}],`+
				`"deliveryAddress":{"fullAddress":"Rue 12","city":"Douala"},"note":"Sonner deux fois"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Commande passée", env.Message)
		out := decodeData[map[string]handler.OrderResponse](t, env)
		assert.Equal(t, "ORD-20260504-ABC123", out["order"].OrderNumber)
		assert.InDelta(t, 3000, out["order"].TotalAmount, 0.001)
		assert.Equal(t, "pending", out["order"].Status)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleClient)

		status, env := f.do(t, http.MethodPost, "/api/orders", token, `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "items doit contenir au moins 1 élément(s)")
	})

	t.Run("zero quantity", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleClient)

		status, env := f.do(t, http.MethodPost, "/api/orders", token,
			`{"items":[{"product":"`+uuid.NewString()+`","quantity":0}]}`)

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "VALIDATION_ERROR", "quantity doit être supérieur ou égal à 1")
	})

	t.Run("cancel after preparation started", func(t *testing.T) {
		f := newAPI(t)
		token, clientID := f.signIn(entity.RoleClient)
		orderID := uuid.New()
		f.orderUC.EXPECT().CancelMine(mock.Anything, clientID, orderID).
			Return(nil, domainerrors.NewInvalidTransitionError("preparing", "cancelled"))

		status, env := f.do(t, http.MethodPut, "/api/orders/"+orderID.String()+"/cancel", token, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assertError(t, env, http.StatusBadRequest, "INVALID_TRANSITION", "Transition de statut invalide: preparing → cancelled")
	})

	t.Run("merchant cannot order", func(t *testing.T) {
		f := newAPI(t)
		token, _ := f.signIn(entity.RoleMerchant)

		status, _ := f.do(t, http.MethodGet, "/api/orders", token, "")

		assert.Equal(t, http.StatusForbidden, status)
	})
}
