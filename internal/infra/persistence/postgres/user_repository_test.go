package postgres

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchant(phone string, approved bool) *entity.User {
	user := &entity.User{
		Phone:        phone,
		PasswordHash: "hash",
		Name:         "Marchand " + phone,
		IsActive:     true,
	}
	user.ChangeRole(entity.RoleMerchant)
	user.Merchant.ShopName = "Boutique " + phone
	user.Merchant.IsApproved = approved

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestMerchant("+237600000001", false)
	user.Email = "shop@example.com"
	user.AddAddress(entity.Address{Label: "Domicile", FullAddress: "Rue 1", City: "Douala"})

	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)
	require.NotEqual(t, uuid.Nil, user.Addresses[0].ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "+237600000001", found.Phone)
	assert.Equal(t, "shop@example.com", found.Email)
	assert.Equal(t, entity.RoleMerchant, found.Role)
	require.NotNil(t, found.Merchant)
	assert.Equal(t, "Boutique +237600000001", found.Merchant.ShopName)
	assert.Nil(t, found.Delivery)
	require.Len(t, found.Addresses, 1)
	assert.True(t, found.Addresses[0].IsDefault)

	byPhone, err := repo.FindByPhone(ctx, "+237600000001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	byEmail, err := repo.FindByEmail(ctx, "shop@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first := newTestMerchant("+237600000001", false)
	first.Email = "dup@example.com"
	require.NoError(t, repo.Create(ctx, first))

	samePhone := newTestMerchant("+237600000001", false)
	assert.ErrorIs(t, repo.Create(ctx, samePhone), repository.ErrUserAlreadyExists)

	sameEmail := newTestMerchant("+237600000002", false)
	sameEmail.Email = "dup@example.com"
	assert.ErrorIs(t, repo.Create(ctx, sameEmail), repository.ErrUserAlreadyExists)

	// Users without email never collide.
	noEmailA := &entity.User{Phone: "+237600000003", PasswordHash: "h", Name: "A", Role: entity.RoleClient, IsActive: true}
	noEmailB := &entity.User{Phone: "+237600000004", PasswordHash: "h", Name: "B", Role: entity.RoleClient, IsActive: true}
	require.NoError(t, repo.Create(ctx, noEmailA))
	require.NoError(t, repo.Create(ctx, noEmailB))
}

func TestUserRepository_Update_ReconcilesProfiles(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestMerchant("+237600000001", true)
	require.NoError(t, repo.Create(ctx, user))

	user.ChangeRole(entity.RoleDelivery)
	user.Delivery.VehicleType = entity.VehicleMoto
	user.IsActive = false
	user.OTP = &entity.OTP{Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDelivery, found.Role)
	assert.False(t, found.IsActive)
	assert.Nil(t, found.Merchant)
	require.NotNil(t, found.Delivery)
	assert.Equal(t, entity.VehicleMoto, found.Delivery.VehicleType)
	require.NotNil(t, found.OTP)
	assert.Equal(t, "123456", found.OTP.Code)

	found.OTP = nil
	found.SetApproved(true)
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, again.OTP)
	assert.True(t, again.IsApproved())
}

func TestUserRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	approved := newTestMerchant("+237600000001", true)
	approved.CreatedAt = base
	pending := newTestMerchant("+237600000002", false)
	pending.CreatedAt = base.Add(time.Hour)
	client := &entity.User{Phone: "+237600000003", PasswordHash: "h", Name: "Client", Role: entity.RoleClient, IsActive: true, CreatedAt: base.Add(2 * time.Hour)}
	for _, u := range []*entity.User{approved, pending, client} {
		require.NoError(t, repo.Create(ctx, u))
	}

	all, err := repo.List(ctx, repository.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, client.ID, all[0].ID)

	merchant := entity.RoleMerchant
	notApproved := false
	pendingOnly, err := repo.List(ctx, repository.UserFilter{Role: &merchant, Approved: &notApproved})
	require.NoError(t, err)
	require.Len(t, pendingOnly, 1)
	assert.Equal(t, pending.ID, pendingOnly[0].ID)

	count, err := repo.Count(ctx, repository.UserFilter{Role: &merchant})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byIDs, err := repo.FindByIDs(ctx, []uuid.UUID{approved.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.Equal(t, "Boutique +237600000001", byIDs[0].ShopName())
}

func TestUserRepository_UpdateFCMTokenAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := newTestMerchant("+237600000001", true)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdateFCMToken(ctx, user.ID, "fcm-token"))
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fcm-token", found.FCMToken)

	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "x"), repository.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)
}

func TestUserRepository_Update_DeletedUserIsNotRecreated(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := newTestMerchant("+237600000001", true)
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Delete(ctx, user.ID))

	user.Name = "Nom modifié"
	assert.ErrorIs(t, repo.Update(ctx, user), repository.ErrUserNotFound)

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	var profiles int64
	require.NoError(t, db.Model(&model.MerchantProfileModel{}).Where("user_id = ?", user.ID).Count(&profiles).Error)
	assert.Zero(t, profiles)
}

func TestAddressRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewAddressRepository(db)

	user := &entity.User{Phone: "+237600000001", PasswordHash: "h", Name: "Client", Role: entity.RoleClient, IsActive: true}
	require.NoError(t, users.Create(ctx, user))

	home := &entity.Address{UserID: user.ID, Label: "Domicile", FullAddress: "Rue 1", IsDefault: true, CreatedAt: time.Now().Add(-time.Minute)}
	require.NoError(t, repo.CreateAddress(ctx, home))

	require.NoError(t, repo.ClearDefault(ctx, user.ID))
	office := &entity.Address{UserID: user.ID, Label: "Bureau", FullAddress: "Rue 2", IsDefault: true}
	require.NoError(t, repo.CreateAddress(ctx, office))

	addresses, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Domicile", addresses[0].Label)
	assert.False(t, addresses[0].IsDefault)
	assert.True(t, addresses[1].IsDefault)
}
