package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a user.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, nil, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt

	return nil
}

// ClearDefault unsets the default flag on every address of the user.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear default address")
	}

	return nil
}

// ListByUser returns the user's addresses in creation order.
func (repo *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	var addressMs []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]entity.Address, 0, len(addressMs))
	for i := range addressMs {
		addresses = append(addresses, *toAddressDomain(&addressMs[i]))
	}

	return addresses, nil
}
