package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userAdminFixtures struct {
	service  usecase.UserAdminUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserAdminService(t *testing.T) userAdminFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return userAdminFixtures{
		service: NewUserAdminService(UserAdminServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserAdminService_ListUsers_RoleFilter(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, repository.UserFilter{}).Return([]*entity.User{}, nil).Twice()
	merchant := entity.RoleMerchant
	fx.userRepo.EXPECT().List(ctx, repository.UserFilter{Role: &merchant}).Return([]*entity.User{}, nil).Once()

	for _, role := range []string{"", "all", "merchant"} {
		_, err := fx.service.ListUsers(ctx, role)
		require.NoError(t, err)
	}
}

func TestUserAdminService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("missing required fields", func(t *testing.T) {
		fx := createTestUserAdminService(t)

		_, err := fx.service.CreateUser(ctx, usecase.UserInput{Name: ptr("Awa"), Phone: ptr("+237690000001")})
		appErr := requireAppErrorCode(t, err, "VALIDATION_ERROR")
		assert.Equal(t, "Champs requis manquants", appErr.Message())
	})

	t.Run("duplicate phone", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.userRepo.EXPECT().FindByPhone(ctx, "+237690000001").Return(newClient("+237690000001"), nil)

		_, err := fx.service.CreateUser(ctx, usecase.UserInput{
			Name: ptr("Awa"), Phone: ptr("+237690000001"), Password: ptr("secret1"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("approved delivery user", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.userRepo.EXPECT().FindByPhone(ctx, "+237690000003").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.CreateUser(ctx, usecase.UserInput{
			Name:          ptr("Moussa"),
			Phone:         ptr("+237690000003"),
			Password:      ptr("secret1"),
			Role:          ptr("delivery"),
			IsApproved:    ptr(true),
			VehicleType:   ptr("moto"),
			VehicleNumber: ptr("LT 123"),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleDelivery, user.Role)
		assert.True(t, user.IsActive)
		assert.True(t, user.IsApproved())
		require.NotNil(t, user.Delivery)
		assert.Equal(t, entity.VehicleMoto, user.Delivery.VehicleType)
		assert.Equal(t, "hashed", user.PasswordHash)
	})

	t.Run("admin role allowed", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		fx.userRepo.EXPECT().FindByPhone(ctx, "+237690000004").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.CreateUser(ctx, usecase.UserInput{
			Name: ptr("Chef"), Phone: ptr("+237690000004"), Password: ptr("secret1"), Role: ptr("admin"),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})
}

func TestUserAdminService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("role change reshapes profiles and rehashes password", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newClient("+237690000001")
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Hash("newpass").Return("new-hash", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.UpdateUser(ctx, user.ID, usecase.UserInput{
			Role:     ptr("merchant"),
			ShopName: ptr("Chez Awa"),
			Password: ptr("newpass"),
		})

		require.NoError(t, err)
		require.NotNil(t, updated.Merchant)
		assert.Equal(t, "Chez Awa", updated.Merchant.ShopName)
		assert.False(t, updated.Merchant.IsApproved)
		assert.Equal(t, "new-hash", updated.PasswordHash)
	})

	t.Run("switching away drops the merchant profile", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newClient("+237690000001")
		user.ChangeRole(entity.RoleMerchant)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.UpdateUser(ctx, user.ID, usecase.UserInput{Role: ptr("client")})
		require.NoError(t, err)
		assert.Nil(t, updated.Merchant)
	})

	t.Run("email owned by someone else", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		user := newClient("+237690000001")
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(newClient("+237690000002"), nil)

		_, err := fx.service.UpdateUser(ctx, user.ID, usecase.UserInput{Email: ptr("Taken@example.com")})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateUser(ctx, id, usecase.UserInput{Name: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserAdminService_ToggleAndDelete(t *testing.T) {
	fx := createTestUserAdminService(t)
	ctx := context.Background()
	user := newClient("+237690000001")

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	toggled, err := fx.service.ToggleUserStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	missing := uuid.New()
	fx.userRepo.EXPECT().Delete(ctx, missing).Return(repository.ErrUserNotFound)
	assert.ErrorIs(t, fx.service.DeleteUser(ctx, missing), domainerrors.ErrUserNotFound)
}

func TestUserAdminService_MerchantApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("approve merchant", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		merchant := newClient("+237690000001")
		merchant.ChangeRole(entity.RoleMerchant)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.userRepo.EXPECT().Update(ctx, merchant).Return(nil)

		approved, err := fx.service.ApproveMerchant(ctx, merchant.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved())
	})

	t.Run("reject merchant", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		merchant := newClient("+237690000001")
		merchant.ChangeRole(entity.RoleMerchant)
		merchant.SetApproved(true)
		fx.userRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
		fx.userRepo.EXPECT().Update(ctx, merchant).Return(nil)

		rejected, err := fx.service.RejectMerchant(ctx, merchant.ID)
		require.NoError(t, err)
		assert.False(t, rejected.IsApproved())
	})

	t.Run("not a merchant", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		client := newClient("+237690000001")
		fx.userRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		_, err := fx.service.ApproveMerchant(ctx, client.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotAMerchant)
	})

	t.Run("list pending merchants", func(t *testing.T) {
		fx := createTestUserAdminService(t)
		merchant := entity.RoleMerchant
		pending := false
		fx.userRepo.EXPECT().List(ctx, repository.UserFilter{Role: &merchant, Approved: &pending}).Return([]*entity.User{}, nil)

		_, err := fx.service.ListMerchants(ctx, &pending)
		require.NoError(t, err)
	})
}
