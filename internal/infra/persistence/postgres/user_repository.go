// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// withProfiles preloads the role profiles and the addresses in creation order.
func withProfiles(db *gorm.DB) *gorm.DB {
	return db.
		Preload("MerchantProfile").
		Preload("DeliveryProfile").
		Preload("Addresses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		})
}

// FindByID retrieves a single user by their unique ID, preloading their profiles and addresses.
// The lookup always hits the primary so a just-deactivated account is seen immediately.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := withProfiles(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves the users with the given IDs. Missing IDs are skipped.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userMs []model.UserModel
	err := withProfiles(repo.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return toUserDomains(userMs), nil
}

// FindByPhone retrieves a single user by phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel
	err := withProfiles(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("phone = ?", phone).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by (normalized) email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := withProfiles(repo.db.WithContext(ctx).Clauses(dbresolver.Write)).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List returns the users matching filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := withProfiles(applyUserFilter(repo.db.WithContext(ctx), filter)).
		Order("users.created_at DESC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return toUserDomains(userMs), nil
}

// Count returns the number of users matching filter.
func (repo *userRepository) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	var count int64
	err := applyUserFilter(repo.db.WithContext(ctx).Model(&model.UserModel{}), filter).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

func applyUserFilter(db *gorm.DB, filter repository.UserFilter) *gorm.DB {
	if filter.Role != nil {
		db = db.Where("users.role = ?", string(*filter.Role))
	}
	if filter.IsActive != nil {
		db = db.Where("users.is_active = ?", *filter.IsActive)
	}
	if filter.Approved != nil && filter.Role != nil {
		switch *filter.Role {
		case entity.RoleMerchant:
			db = db.Where("EXISTS (SELECT 1 FROM merchant_profiles mp WHERE mp.user_id = users.id AND mp.is_approved = ?)", *filter.Approved)
		case entity.RoleDelivery:
			db = db.Where("EXISTS (SELECT 1 FROM delivery_profiles dp WHERE dp.user_id = users.id AND dp.is_approved = ?)", *filter.Approved)
		}
	}

	return db
}

// Create persists a new user entity, including its role profile and addresses.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, repository.ErrUserAlreadyExists, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Merchant != nil && userM.MerchantProfile != nil {
		user.Merchant.UserID = userM.ID
		user.Merchant.UpdatedAt = userM.MerchantProfile.UpdatedAt
	}
	if user.Delivery != nil && userM.DeliveryProfile != nil {
		user.Delivery.UserID = userM.ID
		user.Delivery.UpdatedAt = userM.DeliveryProfile.UpdatedAt
	}
	for i := range user.Addresses {
		user.Addresses[i].ID = userM.Addresses[i].ID
		user.Addresses[i].UserID = userM.ID
		user.Addresses[i].CreatedAt = userM.Addresses[i].CreatedAt
	}

	return nil
}

// Update saves the base record and reconciles the role profiles with user.Role:
// the profile of the current role is upserted, the other one is removed.
// Addresses are managed by the address repository and left untouched.
// A user that no longer exists yields ErrUserNotFound and is never recreated.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(userM).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(userM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		if userM.MerchantProfile != nil {
			if err := upsertByUserID(tx, userM.MerchantProfile); err != nil {
				return err
			}
		} else if err := tx.Where("user_id = ?", userM.ID).Delete(&model.MerchantProfileModel{}).Error; err != nil {
			return err
		}

		if userM.DeliveryProfile != nil {
			if err := upsertByUserID(tx, userM.DeliveryProfile); err != nil {
				return err
			}
		} else if err := tx.Where("user_id = ?", userM.ID).Delete(&model.DeliveryProfileModel{}).Error; err != nil {
			return err
		}

		return nil
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	if err != nil {
		return translateWriteError(err, repository.ErrUserAlreadyExists, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.Merchant != nil && userM.MerchantProfile != nil {
		user.Merchant.UpdatedAt = userM.MerchantProfile.UpdatedAt
	}
	if user.Delivery != nil && userM.DeliveryProfile != nil {
		user.Delivery.UpdatedAt = userM.DeliveryProfile.UpdatedAt
	}

	return nil
}

func upsertByUserID(tx *gorm.DB, profile any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// UpdateFCMToken stores the push notification token of a user.
func (repo *userRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("fcm_token", token)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update fcm token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user permanently together with its profiles and addresses.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&model.MerchantProfileModel{}, &model.DeliveryProfileModel{}, &model.AddressModel{}} {
			if err := tx.Where("user_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&model.UserModel{})
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
